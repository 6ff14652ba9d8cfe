package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SalaryStatus string

const (
	SalaryPending  SalaryStatus = "pending"
	SalaryApproved SalaryStatus = "approved"
	SalaryPaid     SalaryStatus = "paid"
)

func (s SalaryStatus) Valid() bool {
	switch s {
	case SalaryPending, SalaryApproved, SalaryPaid:
		return true
	}
	return false
}

// CanTransitionTo encodes the payroll lifecycle: pending → approved → paid.
func (s SalaryStatus) CanTransitionTo(next SalaryStatus) bool {
	switch s {
	case SalaryPending:
		return next == SalaryApproved
	case SalaryApproved:
		return next == SalaryPaid
	}
	return false
}

type SalaryMethod string

const (
	SalaryBankTransfer SalaryMethod = "bank_transfer"
	SalaryCash         SalaryMethod = "cash"
	SalaryCheque       SalaryMethod = "cheque"
)

func (m SalaryMethod) Valid() bool {
	switch m {
	case SalaryBankTransfer, SalaryCash, SalaryCheque:
		return true
	}
	return false
}

// PayItem is one allowance line on a payslip.
type PayItem struct {
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	IsTaxable bool    `json:"is_taxable"`
}

// DeductionItem is one deduction line on a payslip.
type DeductionItem struct {
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	IsStatutory bool    `json:"is_statutory"`
}

// SalaryPaymentModel is a payslip for one staff member and one period. The
// linked bonus/penalty/loan IDs are settled when the payment is marked paid.
type SalaryPaymentModel struct {
	SalaryID          uuid.UUID                           `gorm:"column:salary_id;type:uuid;default:gen_random_uuid();primaryKey" json:"salary_id"`
	SalaryStaffID     uuid.UUID                           `gorm:"column:salary_staff_id;type:uuid;not null;index" json:"salary_staff_id"`
	SalaryStaffName   string                              `gorm:"column:salary_staff_name;size:160;not null" json:"salary_staff_name"`
	SalaryStaffNumber string                              `gorm:"column:salary_staff_number;size:30;not null" json:"salary_staff_number"`
	SalaryPaymentDate time.Time                           `gorm:"column:salary_payment_date;type:date;not null" json:"salary_payment_date"`
	SalaryPeriodStart time.Time                           `gorm:"column:salary_period_start;type:date;not null" json:"salary_period_start"`
	SalaryPeriodEnd   time.Time                           `gorm:"column:salary_period_end;type:date;not null" json:"salary_period_end"`
	SalaryBasic       float64                             `gorm:"column:salary_basic;not null" json:"salary_basic"`
	SalaryAllowances  datatypes.JSONSlice[PayItem]        `gorm:"column:salary_allowances;type:jsonb" json:"salary_allowances"`
	SalaryDeductions  datatypes.JSONSlice[DeductionItem]  `gorm:"column:salary_deductions;type:jsonb" json:"salary_deductions"`
	SalaryGross       float64                             `gorm:"column:salary_gross;not null" json:"salary_gross"`
	SalaryNet         float64                             `gorm:"column:salary_net;not null" json:"salary_net"`
	SalaryMethod      SalaryMethod                        `gorm:"column:salary_method;type:varchar(20);not null" json:"salary_method"`
	SalaryReference   string                              `gorm:"column:salary_reference;size:18;not null;unique" json:"salary_reference"`
	SalaryStatus      SalaryStatus                        `gorm:"column:salary_status;type:varchar(10);not null;default:'pending'" json:"salary_status"`
	SalaryNotes       *string                             `gorm:"column:salary_notes;type:text" json:"salary_notes,omitempty"`
	SalaryProcessedBy *string                             `gorm:"column:salary_processed_by;size:100" json:"salary_processed_by,omitempty"`
	SalaryProcessedAt *time.Time                          `gorm:"column:salary_processed_at;type:timestamptz" json:"salary_processed_at,omitempty"`

	// IDs claimed at creation so two pending payslips cannot settle the
	// same bonus, penalty or loan installment.
	SalaryBonusIDs   pq.StringArray `gorm:"column:salary_bonus_ids;type:text[]" json:"salary_bonus_ids,omitempty"`
	SalaryPenaltyIDs pq.StringArray `gorm:"column:salary_penalty_ids;type:text[]" json:"salary_penalty_ids,omitempty"`
	SalaryLoanIDs    pq.StringArray `gorm:"column:salary_loan_ids;type:text[]" json:"salary_loan_ids,omitempty"`

	SalaryCreatedAt time.Time      `gorm:"column:salary_created_at;autoCreateTime" json:"salary_created_at"`
	SalaryUpdatedAt time.Time      `gorm:"column:salary_updated_at;autoUpdateTime" json:"salary_updated_at"`
	SalaryDeletedAt gorm.DeletedAt `gorm:"column:salary_deleted_at;index" json:"-"`
}

func (SalaryPaymentModel) TableName() string {
	return "salary_payments"
}

func (m *SalaryPaymentModel) BeforeCreate(tx *gorm.DB) error {
	if m.SalaryID == uuid.Nil {
		m.SalaryID = uuid.New()
	}
	if m.SalaryStatus == "" {
		m.SalaryStatus = SalaryPending
	}
	return nil
}
