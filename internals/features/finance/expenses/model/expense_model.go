package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseStatus string

const (
	ExpenseApproved ExpenseStatus = "approved"
	ExpenseRejected ExpenseStatus = "rejected"
	ExpensePaid     ExpenseStatus = "paid"
)

func (s ExpenseStatus) Valid() bool {
	switch s {
	case ExpenseApproved, ExpenseRejected, ExpensePaid:
		return true
	}
	return false
}

// CanTransitionTo encodes the expense lifecycle. Expenses are stored already
// approved; rejected and paid are terminal.
func (s ExpenseStatus) CanTransitionTo(next ExpenseStatus) bool {
	return s == ExpenseApproved && (next == ExpensePaid || next == ExpenseRejected)
}

type ExpenseMethod string

const (
	ExpenseCash         ExpenseMethod = "cash"
	ExpenseBankTransfer ExpenseMethod = "bank_transfer"
	ExpenseCheque       ExpenseMethod = "cheque"
	ExpensePOS          ExpenseMethod = "pos"
	ExpenseOnline       ExpenseMethod = "online"
)

func (m ExpenseMethod) Valid() bool {
	switch m {
	case ExpenseCash, ExpenseBankTransfer, ExpenseCheque, ExpensePOS, ExpenseOnline:
		return true
	}
	return false
}

type ExpenseModel struct {
	ExpenseID            uuid.UUID     `gorm:"column:expense_id;type:uuid;default:gen_random_uuid();primaryKey" json:"expense_id"`
	ExpenseCategoryID    uuid.UUID     `gorm:"column:expense_category_id;type:uuid;not null;index" json:"expense_category_id"`
	ExpenseCategoryName  string        `gorm:"column:expense_category_name;size:100;not null" json:"expense_category_name"`
	ExpenseAmount        float64       `gorm:"column:expense_amount;not null" json:"expense_amount"`
	ExpenseDescription   string        `gorm:"column:expense_description;type:text;not null" json:"expense_description"`
	ExpensePurpose       *string       `gorm:"column:expense_purpose;type:text" json:"expense_purpose,omitempty"`
	ExpenseMethod        ExpenseMethod `gorm:"column:expense_method;type:varchar(20);not null" json:"expense_method"`
	ExpensePaymentDate   time.Time     `gorm:"column:expense_payment_date;type:date;not null" json:"expense_payment_date"`
	ExpenseVendorName    *string       `gorm:"column:expense_vendor_name;size:100" json:"expense_vendor_name,omitempty"`
	ExpenseVendorContact *string       `gorm:"column:expense_vendor_contact;size:100" json:"expense_vendor_contact,omitempty"`
	ExpenseReference     string        `gorm:"column:expense_reference;size:17;not null;unique" json:"expense_reference"`
	ExpenseInvoiceURL    *string       `gorm:"column:expense_invoice_url;type:text" json:"expense_invoice_url,omitempty"`
	ExpenseStatus        ExpenseStatus `gorm:"column:expense_status;type:varchar(10);not null;default:'approved'" json:"expense_status"`
	ExpenseApprovedBy    *string       `gorm:"column:expense_approved_by;size:100" json:"expense_approved_by,omitempty"`
	ExpenseApprovedAt    *time.Time    `gorm:"column:expense_approved_at;type:timestamptz" json:"expense_approved_at,omitempty"`
	ExpenseNotes         *string       `gorm:"column:expense_notes;type:text" json:"expense_notes,omitempty"`
	ExpenseRecordedBy    string        `gorm:"column:expense_recorded_by;size:100;not null" json:"expense_recorded_by"`

	ExpenseCreatedAt time.Time      `gorm:"column:expense_created_at;autoCreateTime" json:"expense_created_at"`
	ExpenseUpdatedAt time.Time      `gorm:"column:expense_updated_at;autoUpdateTime" json:"expense_updated_at"`
	ExpenseDeletedAt gorm.DeletedAt `gorm:"column:expense_deleted_at;index" json:"-"`
}

func (ExpenseModel) TableName() string {
	return "expenses"
}

func (m *ExpenseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ExpenseID == uuid.Nil {
		m.ExpenseID = uuid.New()
	}
	if m.ExpenseStatus == "" {
		m.ExpenseStatus = ExpenseApproved
	}
	return nil
}
