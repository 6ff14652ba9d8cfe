package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodPOS          PaymentMethod = "pos"
	MethodOnline       PaymentMethod = "online"
	MethodCheque       PaymentMethod = "cheque"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodBankTransfer, MethodPOS, MethodOnline, MethodCheque:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentConfirmed PaymentStatus = "confirmed"
	PaymentCancelled PaymentStatus = "cancelled"
	PaymentRefunded  PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentConfirmed, PaymentCancelled, PaymentRefunded:
		return true
	}
	return false
}

// CanTransitionTo encodes the payment lifecycle; cancelled and refunded
// are terminal.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	switch s {
	case PaymentPending:
		return next == PaymentConfirmed || next == PaymentCancelled
	case PaymentConfirmed:
		return next == PaymentRefunded
	}
	return false
}

// PaymentAllocation is the slice of a payment that lands on one fee category.
type PaymentAllocation struct {
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	FeeType      string  `json:"fee_type"`
	Amount       float64 `json:"amount"`
}

type PaymentModel struct {
	PaymentID              uuid.UUID                              `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`
	PaymentStudentID       uuid.UUID                              `gorm:"column:payment_student_id;type:uuid;not null;index" json:"payment_student_id"`
	PaymentStudentName     string                                 `gorm:"column:payment_student_name;size:160;not null" json:"payment_student_name"`
	PaymentClassID         uuid.UUID                              `gorm:"column:payment_class_id;type:uuid;not null;index" json:"payment_class_id"`
	PaymentClassName       string                                 `gorm:"column:payment_class_name;size:50;not null" json:"payment_class_name"`
	PaymentFeeAssignmentID uuid.UUID                              `gorm:"column:payment_fee_assignment_id;type:uuid;not null;index" json:"payment_fee_assignment_id"`
	PaymentAmount          float64                                `gorm:"column:payment_amount;not null" json:"payment_amount"`
	PaymentMethod          PaymentMethod                          `gorm:"column:payment_method;type:varchar(20);not null" json:"payment_method"`
	PaymentDate            time.Time                              `gorm:"column:payment_date;type:date;not null" json:"payment_date"`
	PaymentAllocations     datatypes.JSONSlice[PaymentAllocation] `gorm:"column:payment_allocations;type:jsonb;not null" json:"payment_allocations"`
	PaymentReference       string                                 `gorm:"column:payment_reference;size:17;not null;unique" json:"payment_reference"`
	PaymentTransactionID   *string                                `gorm:"column:payment_transaction_id;size:100" json:"payment_transaction_id,omitempty"`
	PaymentPaidBy          *string                                `gorm:"column:payment_paid_by;size:100" json:"payment_paid_by,omitempty"`
	PaymentStatus          PaymentStatus                          `gorm:"column:payment_status;type:varchar(10);not null;default:'pending'" json:"payment_status"`
	PaymentNotes           *string                                `gorm:"column:payment_notes;type:text" json:"payment_notes,omitempty"`
	PaymentReceiptURL      *string                                `gorm:"column:payment_receipt_url;type:text" json:"payment_receipt_url,omitempty"`
	PaymentRecordedBy      string                                 `gorm:"column:payment_recorded_by;size:100;not null" json:"payment_recorded_by"`

	PaymentCreatedAt time.Time      `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt time.Time      `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index" json:"-"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

func (m *PaymentModel) BeforeCreate(tx *gorm.DB) error {
	if m.PaymentID == uuid.Nil {
		m.PaymentID = uuid.New()
	}
	if m.PaymentStatus == "" {
		m.PaymentStatus = PaymentPending
	}
	return nil
}
