package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseCategoryModel struct {
	ExpenseCategoryID          uuid.UUID `gorm:"column:expense_category_id;type:uuid;default:gen_random_uuid();primaryKey" json:"expense_category_id"`
	ExpenseCategoryName        string    `gorm:"column:expense_category_name;size:100;not null" json:"expense_category_name"`
	ExpenseCategoryGroup       string    `gorm:"column:expense_category_group;size:50;not null" json:"expense_category_group"`
	ExpenseCategoryDescription *string   `gorm:"column:expense_category_description;type:text" json:"expense_category_description,omitempty"`
	ExpenseCategoryBudgetCode  *string   `gorm:"column:expense_category_budget_code;size:7" json:"expense_category_budget_code,omitempty"`
	ExpenseCategoryIsActive    bool      `gorm:"column:expense_category_is_active;not null;default:true" json:"expense_category_is_active"`

	ExpenseCategoryCreatedAt time.Time      `gorm:"column:expense_category_created_at;autoCreateTime" json:"expense_category_created_at"`
	ExpenseCategoryUpdatedAt time.Time      `gorm:"column:expense_category_updated_at;autoUpdateTime" json:"expense_category_updated_at"`
	ExpenseCategoryDeletedAt gorm.DeletedAt `gorm:"column:expense_category_deleted_at;index" json:"-"`
}

func (ExpenseCategoryModel) TableName() string {
	return "expense_categories"
}

func (m *ExpenseCategoryModel) BeforeCreate(tx *gorm.DB) error {
	if m.ExpenseCategoryID == uuid.Nil {
		m.ExpenseCategoryID = uuid.New()
	}
	return nil
}
