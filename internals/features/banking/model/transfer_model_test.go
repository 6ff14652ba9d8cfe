package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransferStatusTransitions(t *testing.T) {
	tests := []struct {
		from TransferStatus
		to   TransferStatus
		ok   bool
	}{
		{TransferPending, TransferApproved, true},
		{TransferPending, TransferCompleted, true},
		{TransferPending, TransferRejected, true},
		{TransferPending, TransferCancelled, true},
		{TransferApproved, TransferCompleted, true},
		{TransferApproved, TransferCancelled, true},
		{TransferApproved, TransferRejected, false},
		{TransferApproved, TransferPending, false},
		{TransferCompleted, TransferCancelled, false},
		{TransferCompleted, TransferPending, false},
		{TransferRejected, TransferApproved, false},
		{TransferCancelled, TransferPending, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}
