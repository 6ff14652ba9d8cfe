package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeeType string

const (
	FeeTuition     FeeType = "tuition"
	FeeUniform     FeeType = "uniform"
	FeeFeeding     FeeType = "feeding"
	FeeTransport   FeeType = "transport"
	FeeBooks       FeeType = "books"
	FeeSports      FeeType = "sports"
	FeeDevelopment FeeType = "development"
	FeeExamination FeeType = "examination"
	FeePTA         FeeType = "pta"
	FeeComputer    FeeType = "computer"
	FeeLibrary     FeeType = "library"
	FeeLaboratory  FeeType = "laboratory"
	FeeLesson      FeeType = "lesson"
	FeeOther       FeeType = "other"
)

func (t FeeType) Valid() bool {
	switch t {
	case FeeTuition, FeeUniform, FeeFeeding, FeeTransport, FeeBooks, FeeSports,
		FeeDevelopment, FeeExamination, FeePTA, FeeComputer, FeeLibrary,
		FeeLaboratory, FeeLesson, FeeOther:
		return true
	}
	return false
}

type FeeCategoryModel struct {
	FeeCategoryID          uuid.UUID `gorm:"column:fee_category_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_category_id"`
	FeeCategoryName        string    `gorm:"column:fee_category_name;size:100;not null" json:"fee_category_name"`
	FeeCategoryType        FeeType   `gorm:"column:fee_category_type;type:varchar(20);not null" json:"fee_category_type"`
	FeeCategoryDescription *string   `gorm:"column:fee_category_description;type:text" json:"fee_category_description,omitempty"`
	FeeCategoryIsMandatory bool      `gorm:"column:fee_category_is_mandatory;not null;default:false" json:"fee_category_is_mandatory"`
	FeeCategoryIsActive    bool      `gorm:"column:fee_category_is_active;not null;default:true" json:"fee_category_is_active"`

	FeeCategoryCreatedAt time.Time      `gorm:"column:fee_category_created_at;autoCreateTime" json:"fee_category_created_at"`
	FeeCategoryUpdatedAt time.Time      `gorm:"column:fee_category_updated_at;autoUpdateTime" json:"fee_category_updated_at"`
	FeeCategoryDeletedAt gorm.DeletedAt `gorm:"column:fee_category_deleted_at;index" json:"-"`
}

func (FeeCategoryModel) TableName() string {
	return "fee_categories"
}

func (m *FeeCategoryModel) BeforeCreate(tx *gorm.DB) error {
	if m.FeeCategoryID == uuid.Nil {
		m.FeeCategoryID = uuid.New()
	}
	return nil
}
