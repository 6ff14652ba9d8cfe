package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBankTransactionStatusTransitions(t *testing.T) {
	tests := []struct {
		from BankTransactionStatus
		to   BankTransactionStatus
		ok   bool
	}{
		{TransactionPending, TransactionCleared, true},
		{TransactionCleared, TransactionReconciled, true},
		// reconciliation cannot skip the clearing step
		{TransactionPending, TransactionReconciled, false},
		{TransactionCleared, TransactionPending, false},
		{TransactionReconciled, TransactionCleared, false},
		{TransactionReconciled, TransactionPending, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}
