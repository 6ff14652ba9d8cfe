package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBankAccountTypeValid(t *testing.T) {
	assert.True(t, AccountCurrent.Valid())
	assert.True(t, AccountSavings.Valid())
	assert.False(t, BankAccountType("checking").Valid())
	assert.False(t, BankAccountType("").Valid())
}

func TestBankAccountBalanceFloor(t *testing.T) {
	tests := []struct {
		name    string
		balance float64
		wantErr bool
	}{
		{name: "positive balance", balance: 250_000, wantErr: false},
		{name: "zero balance", balance: 0, wantErr: false},
		{name: "overdrawn but above the floor", balance: -9_000_000, wantErr: false},
		{name: "exactly at the floor", balance: MinAccountBalance, wantErr: false},
		{name: "below the floor", balance: MinAccountBalance - 0.01, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &BankAccountModel{BankAccountBalance: tt.balance}
			err := m.BeforeSave(nil)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
