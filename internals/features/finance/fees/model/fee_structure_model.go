package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Term string

const (
	TermFirst  Term = "first"
	TermSecond Term = "second"
	TermThird  Term = "third"
)

func (t Term) Valid() bool {
	switch t {
	case TermFirst, TermSecond, TermThird:
		return true
	}
	return false
}

// FeeStructureItem is one billable line of a structure; category fields are
// denormalized so the structure stays readable after category edits.
type FeeStructureItem struct {
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	FeeType      string  `json:"fee_type"`
	Amount       float64 `json:"amount"`
	IsMandatory  bool    `json:"is_mandatory"`
}

type FeeStructureModel struct {
	FeeStructureID           uuid.UUID                            `gorm:"column:fee_structure_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_structure_id"`
	FeeStructureClassID      uuid.UUID                            `gorm:"column:fee_structure_class_id;type:uuid;not null;index" json:"fee_structure_class_id"`
	FeeStructureAcademicYear string                               `gorm:"column:fee_structure_academic_year;size:9;not null" json:"fee_structure_academic_year"`
	FeeStructureTerm         Term                                 `gorm:"column:fee_structure_term;type:varchar(10);not null" json:"fee_structure_term"`
	FeeStructureItems        datatypes.JSONSlice[FeeStructureItem] `gorm:"column:fee_structure_items;type:jsonb;not null" json:"fee_structure_items"`
	FeeStructureTotalAmount  float64                              `gorm:"column:fee_structure_total_amount;not null" json:"fee_structure_total_amount"`
	FeeStructureIsActive     bool                                 `gorm:"column:fee_structure_is_active;not null;default:true" json:"fee_structure_is_active"`

	FeeStructureCreatedAt time.Time      `gorm:"column:fee_structure_created_at;autoCreateTime" json:"fee_structure_created_at"`
	FeeStructureUpdatedAt time.Time      `gorm:"column:fee_structure_updated_at;autoUpdateTime" json:"fee_structure_updated_at"`
	FeeStructureDeletedAt gorm.DeletedAt `gorm:"column:fee_structure_deleted_at;index" json:"-"`
}

func (FeeStructureModel) TableName() string {
	return "fee_structures"
}

func (m *FeeStructureModel) BeforeCreate(tx *gorm.DB) error {
	if m.FeeStructureID == uuid.Nil {
		m.FeeStructureID = uuid.New()
	}
	return nil
}
