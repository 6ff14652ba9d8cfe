package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BankAccountType string

const (
	AccountCurrent BankAccountType = "current"
	AccountSavings BankAccountType = "savings"
)

// MinAccountBalance is the integrity floor for a persisted account balance.
// Transaction posting stops far earlier at the overdraft limit; this guards
// every other writer of the account row.
const MinAccountBalance = -50_000_000.0

func (t BankAccountType) Valid() bool {
	switch t {
	case AccountCurrent, AccountSavings:
		return true
	}
	return false
}

// BankAccountModel mirrors one real bank account. Balance is maintained by
// transaction posting only; it is never written directly from a request.
type BankAccountModel struct {
	BankAccountID       uuid.UUID       `gorm:"column:bank_account_id;type:uuid;default:gen_random_uuid();primaryKey" json:"bank_account_id"`
	BankAccountName     string          `gorm:"column:bank_account_name;size:150;not null" json:"bank_account_name"`
	BankAccountBankName string          `gorm:"column:bank_account_bank_name;size:100;not null" json:"bank_account_bank_name"`
	BankAccountNumber   string          `gorm:"column:bank_account_number;size:10;not null;unique" json:"bank_account_number"`
	BankAccountType     BankAccountType `gorm:"column:bank_account_type;type:varchar(10);not null" json:"bank_account_type"`
	BankAccountBalance  float64         `gorm:"column:bank_account_balance;not null;default:0" json:"bank_account_balance"`
	BankAccountIsActive bool            `gorm:"column:bank_account_is_active;not null;default:true" json:"bank_account_is_active"`

	BankAccountCreatedAt time.Time      `gorm:"column:bank_account_created_at;autoCreateTime" json:"bank_account_created_at"`
	BankAccountUpdatedAt time.Time      `gorm:"column:bank_account_updated_at;autoUpdateTime" json:"bank_account_updated_at"`
	BankAccountDeletedAt gorm.DeletedAt `gorm:"column:bank_account_deleted_at;index" json:"-"`
}

func (BankAccountModel) TableName() string {
	return "bank_accounts"
}

func (m *BankAccountModel) BeforeCreate(tx *gorm.DB) error {
	if m.BankAccountID == uuid.Nil {
		m.BankAccountID = uuid.New()
	}
	return nil
}

func (m *BankAccountModel) BeforeSave(tx *gorm.DB) error {
	if m.BankAccountBalance < MinAccountBalance {
		return fmt.Errorf("account balance ₦%.2f is below the integrity floor of ₦%.2f",
			m.BankAccountBalance, MinAccountBalance)
	}
	return nil
}
