package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTransactionAmounts(t *testing.T) {
	tests := []struct {
		name    string
		debit   float64
		credit  float64
		wantErr error
	}{
		{name: "credit only", debit: 0, credit: 250_000, wantErr: nil},
		{name: "debit only", debit: 15_000, credit: 0, wantErr: nil},
		{name: "both sides filled", debit: 100, credit: 100, wantErr: ErrBothAmounts},
		{name: "both zero", debit: 0, credit: 0, wantErr: ErrZeroAmounts},
		{name: "negative debit", debit: -5, credit: 0, wantErr: ErrNegativeAmounts},
		{name: "negative credit", debit: 0, credit: -5, wantErr: ErrNegativeAmounts},
		{name: "negative wins over both-sides check", debit: -5, credit: 10, wantErr: ErrNegativeAmounts},
		{name: "at the cap", debit: 0, credit: MaxSingleTransaction, wantErr: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTransactionAmounts(tt.debit, tt.credit)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}

	t.Run("over the cap", func(t *testing.T) {
		err := ValidateTransactionAmounts(0, MaxSingleTransaction+1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds the maximum")
	})
}

func TestNextBalance(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		debit   float64
		credit  float64
		want    float64
	}{
		{name: "credit adds", current: 1000, debit: 0, credit: 250.50, want: 1250.50},
		{name: "debit subtracts", current: 1000, debit: 300, credit: 0, want: 700},
		{name: "into overdraft", current: 100, debit: 150, credit: 0, want: -50},
		{name: "rounds to kobo", current: 10.105, debit: 0, credit: 0.101, want: 10.21},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NextBalance(tt.current, tt.debit, tt.credit), 0.001)
		})
	}
}

func TestRequiresApproval(t *testing.T) {
	assert.False(t, RequiresApproval(1_000_000))
	assert.False(t, RequiresApproval(MaxTransferWithoutApproval))
	assert.True(t, RequiresApproval(MaxTransferWithoutApproval+0.01))
	assert.True(t, RequiresApproval(20_000_000))
}
