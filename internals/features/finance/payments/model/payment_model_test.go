package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatusTransitions(t *testing.T) {
	tests := []struct {
		from PaymentStatus
		to   PaymentStatus
		ok   bool
	}{
		{PaymentPending, PaymentConfirmed, true},
		{PaymentPending, PaymentCancelled, true},
		{PaymentPending, PaymentRefunded, false},
		{PaymentConfirmed, PaymentRefunded, true},
		{PaymentConfirmed, PaymentPending, false},
		{PaymentConfirmed, PaymentCancelled, false},
		{PaymentCancelled, PaymentConfirmed, false},
		{PaymentRefunded, PaymentConfirmed, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestPaymentMethodValid(t *testing.T) {
	for _, m := range []PaymentMethod{MethodCash, MethodBankTransfer, MethodPOS, MethodOnline, MethodCheque} {
		assert.True(t, m.Valid(), string(m))
	}
	assert.False(t, PaymentMethod("barter").Valid())
	assert.False(t, PaymentMethod("").Valid())
}
