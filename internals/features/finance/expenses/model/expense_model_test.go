package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpenseStatusTransitions(t *testing.T) {
	tests := []struct {
		from ExpenseStatus
		to   ExpenseStatus
		ok   bool
	}{
		{ExpenseApproved, ExpensePaid, true},
		{ExpenseApproved, ExpenseRejected, true},
		{ExpensePaid, ExpenseApproved, false},
		{ExpensePaid, ExpenseRejected, false},
		{ExpenseRejected, ExpensePaid, false},
		{ExpenseRejected, ExpenseApproved, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestExpenseStatusValid(t *testing.T) {
	assert.True(t, ExpenseApproved.Valid())
	assert.True(t, ExpensePaid.Valid())
	assert.False(t, ExpenseStatus("pending").Valid(), "expenses enter the book already approved")
	assert.False(t, ExpenseStatus("").Valid())
}

func TestExpenseMethodValid(t *testing.T) {
	for _, m := range []ExpenseMethod{ExpenseCash, ExpenseBankTransfer, ExpenseCheque, ExpensePOS, ExpenseOnline} {
		assert.True(t, m.Valid(), string(m))
	}
	assert.False(t, ExpenseMethod("crypto").Valid())
}
