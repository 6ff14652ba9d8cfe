package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bursary_backend/internals/features/banking/model"
	helper "bursary_backend/internals/helpers"
)

// Fraud-control limits in naira. The account-level integrity floor lives on
// the model as model.MinAccountBalance.
const (
	MaxSingleTransaction       = 1_000_000_000.0
	MaxTransferWithoutApproval = 5_000_000.0
	OverdraftAlertThreshold    = -10_000_000.0
)

var (
	ErrBothAmounts     = errors.New("a transaction cannot carry both a debit and a credit amount")
	ErrZeroAmounts     = errors.New("a transaction must carry a non-zero debit or credit amount")
	ErrNegativeAmounts = errors.New("transaction amounts cannot be negative")
	ErrSelfTransfer    = errors.New("cannot transfer to the same account")
)

// ValidateTransactionAmounts enforces single-entry integrity: exactly one of
// debit or credit, both non-negative, and under the single-transaction cap.
func ValidateTransactionAmounts(debit, credit float64) error {
	if debit < 0 || credit < 0 {
		return ErrNegativeAmounts
	}
	if debit > 0 && credit > 0 {
		return ErrBothAmounts
	}
	if debit == 0 && credit == 0 {
		return ErrZeroAmounts
	}
	if amount := max(debit, credit); amount > MaxSingleTransaction {
		return fmt.Errorf("transaction amount ₦%.2f exceeds the maximum of ₦%.2f", amount, MaxSingleTransaction)
	}
	return nil
}

// NextBalance is the account balance after a line posts. Credits put money
// in, debits take it out.
func NextBalance(current, debit, credit float64) float64 {
	return helper.Round2(current + credit - debit)
}

// RequiresApproval reports whether a transfer is too large to complete
// without an approval stamp.
func RequiresApproval(amount float64) bool {
	return amount > MaxTransferWithoutApproval
}

// PostTransaction writes one cashbook line and moves the account balance
// inside the caller's transaction. Posting that would push the account past
// the overdraft alert threshold is refused.
func PostTransaction(tx *gorm.DB, account *model.BankAccountModel, txn *model.BankTransactionModel) error {
	if err := ValidateTransactionAmounts(txn.BankTransactionDebitAmount, txn.BankTransactionCreditAmount); err != nil {
		return err
	}

	balance := NextBalance(account.BankAccountBalance, txn.BankTransactionDebitAmount, txn.BankTransactionCreditAmount)
	if balance < OverdraftAlertThreshold {
		return fmt.Errorf("posting would take the account balance to ₦%.2f, past the overdraft limit", balance)
	}

	txn.BankTransactionAccountID = account.BankAccountID
	txn.BankTransactionBalance = balance
	if err := tx.Create(txn).Error; err != nil {
		return err
	}

	// the struct carries the new balance so the model's save hook sees it
	account.BankAccountBalance = balance
	if err := tx.Model(account).Update("bank_account_balance", balance).Error; err != nil {
		return err
	}
	return nil
}
