package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bursary_backend/internals/features/hr/payroll/model"
)

func TestMonthlyDeduction(t *testing.T) {
	assert.InDelta(t, 5_000, MonthlyDeduction(60_000, 12), 0.001)
	assert.InDelta(t, 33_333.33, MonthlyDeduction(100_000, 3), 0.001)
	assert.Zero(t, MonthlyDeduction(60_000, 0))
	assert.Zero(t, MonthlyDeduction(60_000, -1))
}

func TestNextInstallment(t *testing.T) {
	tests := []struct {
		name    string
		balance float64
		monthly float64
		want    float64
	}{
		{name: "regular installment", balance: 50_000, monthly: 5_000, want: 5_000},
		{name: "final partial balance", balance: 3_000, monthly: 5_000, want: 3_000},
		{name: "balance equals installment", balance: 5_000, monthly: 5_000, want: 5_000},
		{name: "nothing left", balance: 0, monthly: 5_000, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loan := &model.StaffLoanModel{
				LoanBalance:          tt.balance,
				LoanMonthlyDeduction: tt.monthly,
			}
			assert.InDelta(t, tt.want, NextInstallment(loan), 0.001)
		})
	}
}

func TestBuildSchedule(t *testing.T) {
	loan := &model.StaffLoanModel{
		LoanPrincipal:        100_000,
		LoanTermMonths:       3,
		LoanMonthlyDeduction: MonthlyDeduction(100_000, 3),
		LoanStartDate:        time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	rows := BuildSchedule(loan)
	require.Len(t, rows, 3)

	assert.Equal(t, 1, rows[0].Month)
	assert.Equal(t, "2025-02-15", rows[0].DueDate)
	assert.InDelta(t, 33_333.33, rows[0].Amount, 0.001)
	assert.InDelta(t, 66_666.67, rows[0].RemainingAfter, 0.001)

	assert.Equal(t, "2025-03-15", rows[1].DueDate)
	assert.InDelta(t, 33_333.34, rows[1].RemainingAfter, 0.001)

	assert.Equal(t, "2025-04-15", rows[2].DueDate)
	assert.InDelta(t, 33_333.34, rows[2].Amount, 0.001, "final installment absorbs the rounding remainder")
	assert.Zero(t, rows[2].RemainingAfter)
}

func TestApplyRepayment(t *testing.T) {
	base := model.StaffLoanModel{
		LoanPrincipal:        60_000,
		LoanTermMonths:       12,
		LoanMonthlyDeduction: 5_000,
		LoanAmountRepaid:     10_000,
		LoanBalance:          50_000,
		LoanStatus:           model.LoanActive,
	}

	t.Run("regular repayment", func(t *testing.T) {
		loan := base
		require.NoError(t, ApplyRepayment(&loan, 5_000))
		assert.InDelta(t, 15_000, loan.LoanAmountRepaid, 0.001)
		assert.InDelta(t, 45_000, loan.LoanBalance, 0.001)
		assert.Equal(t, model.LoanActive, loan.LoanStatus)
	})

	t.Run("final repayment completes the loan", func(t *testing.T) {
		loan := base
		loan.LoanAmountRepaid = 55_000
		loan.LoanBalance = 5_000
		require.NoError(t, ApplyRepayment(&loan, 5_000))
		assert.Equal(t, model.LoanCompleted, loan.LoanStatus)
		assert.Zero(t, loan.LoanBalance)
		assert.InDelta(t, loan.LoanPrincipal, loan.LoanAmountRepaid, 0.001)
	})

	t.Run("sub-kobo shortfall still completes", func(t *testing.T) {
		loan := base
		loan.LoanAmountRepaid = 55_000
		loan.LoanBalance = 5_000
		require.NoError(t, ApplyRepayment(&loan, 4_999.995))
		assert.Equal(t, model.LoanCompleted, loan.LoanStatus)
		assert.Zero(t, loan.LoanBalance)
		assert.InDelta(t, loan.LoanPrincipal, loan.LoanAmountRepaid, 0.001)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		loan := base
		assert.ErrorIs(t, ApplyRepayment(&loan, 0), ErrRepaymentNotPositive)
		assert.ErrorIs(t, ApplyRepayment(&loan, -100), ErrRepaymentNotPositive)
	})

	t.Run("rejects overpayment", func(t *testing.T) {
		loan := base
		assert.ErrorIs(t, ApplyRepayment(&loan, 50_000.02), ErrRepaymentExceedsBalance)
		assert.InDelta(t, 50_000, loan.LoanBalance, 0.001, "failed repayment leaves the loan untouched")
	})

	t.Run("rejects inactive loans", func(t *testing.T) {
		loan := base
		loan.LoanStatus = model.LoanCompleted
		assert.ErrorIs(t, ApplyRepayment(&loan, 5_000), ErrLoanNotActive)

		loan.LoanStatus = model.LoanCancelled
		assert.ErrorIs(t, ApplyRepayment(&loan, 5_000), ErrLoanNotActive)
	})
}
