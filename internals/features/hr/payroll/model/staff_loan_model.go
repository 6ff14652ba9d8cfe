package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LoanStatus string

const (
	LoanActive    LoanStatus = "active"
	LoanCompleted LoanStatus = "completed"
	LoanCancelled LoanStatus = "cancelled"
)

func (s LoanStatus) Valid() bool {
	switch s {
	case LoanActive, LoanCompleted, LoanCancelled:
		return true
	}
	return false
}

// StaffLoanModel tracks an interest-free salary advance repaid in equal
// monthly installments. Balance is always Principal − AmountRepaid.
type StaffLoanModel struct {
	LoanID               uuid.UUID  `gorm:"column:loan_id;type:uuid;default:gen_random_uuid();primaryKey" json:"loan_id"`
	LoanStaffID          uuid.UUID  `gorm:"column:loan_staff_id;type:uuid;not null;index" json:"loan_staff_id"`
	LoanStaffName        string     `gorm:"column:loan_staff_name;size:160;not null" json:"loan_staff_name"`
	LoanPrincipal        float64    `gorm:"column:loan_principal;not null" json:"loan_principal"`
	LoanReason           *string    `gorm:"column:loan_reason;type:text" json:"loan_reason,omitempty"`
	LoanTermMonths       int        `gorm:"column:loan_term_months;not null" json:"loan_term_months"`
	LoanMonthlyDeduction float64    `gorm:"column:loan_monthly_deduction;not null" json:"loan_monthly_deduction"`
	LoanAmountRepaid     float64    `gorm:"column:loan_amount_repaid;not null;default:0" json:"loan_amount_repaid"`
	LoanBalance          float64    `gorm:"column:loan_balance;not null" json:"loan_balance"`
	LoanStartDate        time.Time  `gorm:"column:loan_start_date;type:date;not null" json:"loan_start_date"`
	LoanStatus           LoanStatus `gorm:"column:loan_status;type:varchar(10);not null;default:'active'" json:"loan_status"`

	LoanCreatedAt time.Time      `gorm:"column:loan_created_at;autoCreateTime" json:"loan_created_at"`
	LoanUpdatedAt time.Time      `gorm:"column:loan_updated_at;autoUpdateTime" json:"loan_updated_at"`
	LoanDeletedAt gorm.DeletedAt `gorm:"column:loan_deleted_at;index" json:"-"`
}

func (StaffLoanModel) TableName() string {
	return "staff_loans"
}

func (m *StaffLoanModel) BeforeCreate(tx *gorm.DB) error {
	if m.LoanID == uuid.Nil {
		m.LoanID = uuid.New()
	}
	if m.LoanStatus == "" {
		m.LoanStatus = LoanActive
	}
	return nil
}
