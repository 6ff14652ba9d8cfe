package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSalaryStatusTransitions(t *testing.T) {
	tests := []struct {
		from SalaryStatus
		to   SalaryStatus
		ok   bool
	}{
		{SalaryPending, SalaryApproved, true},
		{SalaryPending, SalaryPaid, false},
		{SalaryApproved, SalaryPaid, true},
		{SalaryApproved, SalaryPending, false},
		{SalaryPaid, SalaryApproved, false},
		{SalaryPaid, SalaryPending, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}
