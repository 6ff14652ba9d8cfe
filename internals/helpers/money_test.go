package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 10.004, want: 10.0},
		{in: 10.006, want: 10.01},
		{in: 10.996, want: 11.0},
		{in: -2.676, want: -2.68},
		{in: 0, want: 0},
		{in: 1234567.891, want: 1234567.89},
		{in: 0.1 + 0.2, want: 0.3},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Round2(tt.in), 0.0001, "Round2(%v)", tt.in)
	}
}

func TestMoneyEquals(t *testing.T) {
	assert.True(t, MoneyEquals(100.00, 100.00))
	assert.True(t, MoneyEquals(100.00, 100.009))
	assert.True(t, MoneyEquals(0.1+0.2, 0.3))
	assert.False(t, MoneyEquals(100.00, 100.02))
	assert.False(t, MoneyEquals(0, 0.011))
}
