package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BankTransactionStatus string

const (
	TransactionPending    BankTransactionStatus = "pending"
	TransactionCleared    BankTransactionStatus = "cleared"
	TransactionReconciled BankTransactionStatus = "reconciled"
)

func (s BankTransactionStatus) Valid() bool {
	switch s {
	case TransactionPending, TransactionCleared, TransactionReconciled:
		return true
	}
	return false
}

// CanTransitionTo keeps statement reconciliation one-way: pending clears,
// cleared reconciles, reconciled never moves again.
func (s BankTransactionStatus) CanTransitionTo(next BankTransactionStatus) bool {
	switch s {
	case TransactionPending:
		return next == TransactionCleared
	case TransactionCleared:
		return next == TransactionReconciled
	}
	return false
}

// BankTransactionModel is one cashbook line. Exactly one of debit or credit
// is non-zero; Balance is the account's running balance after this line.
type BankTransactionModel struct {
	BankTransactionID           uuid.UUID             `gorm:"column:bank_transaction_id;type:uuid;default:gen_random_uuid();primaryKey" json:"bank_transaction_id"`
	BankTransactionAccountID    uuid.UUID             `gorm:"column:bank_transaction_account_id;type:uuid;not null;index" json:"bank_transaction_account_id"`
	BankTransactionDate         time.Time             `gorm:"column:bank_transaction_date;type:date;not null" json:"bank_transaction_date"`
	BankTransactionDescription  string                `gorm:"column:bank_transaction_description;type:text;not null" json:"bank_transaction_description"`
	BankTransactionReference    string                `gorm:"column:bank_transaction_reference;size:30;not null;uniqueIndex" json:"bank_transaction_reference"`
	BankTransactionDebitAmount  float64               `gorm:"column:bank_transaction_debit_amount;not null;default:0" json:"bank_transaction_debit_amount"`
	BankTransactionCreditAmount float64               `gorm:"column:bank_transaction_credit_amount;not null;default:0" json:"bank_transaction_credit_amount"`
	BankTransactionBalance      float64               `gorm:"column:bank_transaction_balance;not null" json:"bank_transaction_balance"`
	BankTransactionStatus       BankTransactionStatus `gorm:"column:bank_transaction_status;type:varchar(10);not null;default:'pending'" json:"bank_transaction_status"`
	BankTransactionIsReconciled bool                  `gorm:"column:bank_transaction_is_reconciled;not null;default:false" json:"bank_transaction_is_reconciled"`
	BankTransactionRecordedBy   string                `gorm:"column:bank_transaction_recorded_by;size:160;not null" json:"bank_transaction_recorded_by"`

	BankTransactionCreatedAt time.Time      `gorm:"column:bank_transaction_created_at;autoCreateTime" json:"bank_transaction_created_at"`
	BankTransactionUpdatedAt time.Time      `gorm:"column:bank_transaction_updated_at;autoUpdateTime" json:"bank_transaction_updated_at"`
	BankTransactionDeletedAt gorm.DeletedAt `gorm:"column:bank_transaction_deleted_at;index" json:"-"`
}

func (BankTransactionModel) TableName() string {
	return "bank_transactions"
}

func (m *BankTransactionModel) BeforeCreate(tx *gorm.DB) error {
	if m.BankTransactionID == uuid.Nil {
		m.BankTransactionID = uuid.New()
	}
	if m.BankTransactionStatus == "" {
		m.BankTransactionStatus = TransactionPending
	}
	return nil
}
