package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AssignmentStatus string

const (
	AssignmentUnpaid   AssignmentStatus = "unpaid"
	AssignmentPartial  AssignmentStatus = "partial"
	AssignmentPaid     AssignmentStatus = "paid"
	AssignmentOverpaid AssignmentStatus = "overpaid"
)

func (s AssignmentStatus) Valid() bool {
	switch s {
	case AssignmentUnpaid, AssignmentPartial, AssignmentPaid, AssignmentOverpaid:
		return true
	}
	return false
}

// FeeAssignmentItem snapshots a structure item at assignment time and tracks
// how much of it has been paid.
type FeeAssignmentItem struct {
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	FeeType      string  `json:"fee_type"`
	Amount       float64 `json:"amount"`
	IsMandatory  bool    `json:"is_mandatory"`
	AmountPaid   float64 `json:"amount_paid"`
	Balance      float64 `json:"balance"`
}

type FeeAssignmentModel struct {
	FeeAssignmentID             uuid.UUID                             `gorm:"column:fee_assignment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_assignment_id"`
	FeeAssignmentStudentID      uuid.UUID                             `gorm:"column:fee_assignment_student_id;type:uuid;not null;index" json:"fee_assignment_student_id"`
	FeeAssignmentStudentName    string                                `gorm:"column:fee_assignment_student_name;size:160;not null" json:"fee_assignment_student_name"`
	FeeAssignmentClassID        uuid.UUID                             `gorm:"column:fee_assignment_class_id;type:uuid;not null;index" json:"fee_assignment_class_id"`
	FeeAssignmentFeeStructureID uuid.UUID                             `gorm:"column:fee_assignment_fee_structure_id;type:uuid;not null" json:"fee_assignment_fee_structure_id"`
	FeeAssignmentAcademicYear   string                                `gorm:"column:fee_assignment_academic_year;size:9;not null" json:"fee_assignment_academic_year"`
	FeeAssignmentTerm           Term                                  `gorm:"column:fee_assignment_term;type:varchar(10);not null" json:"fee_assignment_term"`
	FeeAssignmentItems          datatypes.JSONSlice[FeeAssignmentItem] `gorm:"column:fee_assignment_items;type:jsonb;not null" json:"fee_assignment_items"`
	FeeAssignmentOriginalAmount float64                               `gorm:"column:fee_assignment_original_amount;not null" json:"fee_assignment_original_amount"`

	FeeAssignmentScholarshipID    *uuid.UUID `gorm:"column:fee_assignment_scholarship_id;type:uuid" json:"fee_assignment_scholarship_id,omitempty"`
	FeeAssignmentScholarshipName  *string    `gorm:"column:fee_assignment_scholarship_name;size:100" json:"fee_assignment_scholarship_name,omitempty"`
	FeeAssignmentScholarshipType  *string    `gorm:"column:fee_assignment_scholarship_type;size:20" json:"fee_assignment_scholarship_type,omitempty"`
	FeeAssignmentScholarshipValue *float64   `gorm:"column:fee_assignment_scholarship_value" json:"fee_assignment_scholarship_value,omitempty"`
	FeeAssignmentDiscountAmount   float64    `gorm:"column:fee_assignment_discount_amount;not null;default:0" json:"fee_assignment_discount_amount"`

	FeeAssignmentTotalAmount float64          `gorm:"column:fee_assignment_total_amount;not null" json:"fee_assignment_total_amount"`
	FeeAssignmentAmountPaid  float64          `gorm:"column:fee_assignment_amount_paid;not null;default:0" json:"fee_assignment_amount_paid"`
	FeeAssignmentBalance     float64          `gorm:"column:fee_assignment_balance;not null" json:"fee_assignment_balance"`
	FeeAssignmentStatus      AssignmentStatus `gorm:"column:fee_assignment_status;type:varchar(10);not null;default:'unpaid'" json:"fee_assignment_status"`
	FeeAssignmentDueDate     *time.Time       `gorm:"column:fee_assignment_due_date;type:date" json:"fee_assignment_due_date,omitempty"`

	FeeAssignmentCreatedAt time.Time      `gorm:"column:fee_assignment_created_at;autoCreateTime" json:"fee_assignment_created_at"`
	FeeAssignmentUpdatedAt time.Time      `gorm:"column:fee_assignment_updated_at;autoUpdateTime" json:"fee_assignment_updated_at"`
	FeeAssignmentDeletedAt gorm.DeletedAt `gorm:"column:fee_assignment_deleted_at;index" json:"-"`
}

func (FeeAssignmentModel) TableName() string {
	return "fee_assignments"
}

func (m *FeeAssignmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.FeeAssignmentID == uuid.Nil {
		m.FeeAssignmentID = uuid.New()
	}
	if m.FeeAssignmentStatus == "" {
		m.FeeAssignmentStatus = AssignmentUnpaid
	}
	return nil
}
