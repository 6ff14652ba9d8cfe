package service

import (
	"errors"

	"bursary_backend/internals/features/hr/payroll/model"
	helper "bursary_backend/internals/helpers"
)

var (
	ErrRepaymentExceedsBalance = errors.New("repayment exceeds the outstanding loan balance")
	ErrRepaymentNotPositive    = errors.New("repayment amount must be greater than zero")
	ErrLoanNotActive           = errors.New("loan is not active")
)

// MonthlyDeduction splits the principal into equal monthly installments.
// The rounding remainder lands on the final installment.
func MonthlyDeduction(principal float64, termMonths int) float64 {
	if termMonths <= 0 {
		return 0
	}
	return helper.Round2(principal / float64(termMonths))
}

// NextInstallment is the amount the coming payroll should deduct: the flat
// monthly figure, or the whole balance once that is all that is left.
func NextInstallment(loan *model.StaffLoanModel) float64 {
	if loan.LoanBalance <= loan.LoanMonthlyDeduction+helper.MoneyTolerance {
		return helper.Round2(loan.LoanBalance)
	}
	return loan.LoanMonthlyDeduction
}

// ScheduleRow is one month of the repayment preview.
type ScheduleRow struct {
	Month          int     `json:"month"`
	DueDate        string  `json:"due_date"`
	Amount         float64 `json:"amount"`
	RemainingAfter float64 `json:"remaining_after"`
}

// BuildSchedule lays out the full repayment plan from the start date. The
// final row absorbs whatever rounding left the earlier rows short or over.
func BuildSchedule(loan *model.StaffLoanModel) []ScheduleRow {
	rows := make([]ScheduleRow, 0, loan.LoanTermMonths)
	remaining := loan.LoanPrincipal
	for month := 1; month <= loan.LoanTermMonths; month++ {
		amount := loan.LoanMonthlyDeduction
		if month == loan.LoanTermMonths {
			amount = helper.Round2(remaining)
		}
		remaining = helper.Round2(remaining - amount)
		if remaining < 0 {
			remaining = 0
		}
		rows = append(rows, ScheduleRow{
			Month:          month,
			DueDate:        helper.FormatDate(loan.LoanStartDate.AddDate(0, month, 0)),
			Amount:         amount,
			RemainingAfter: remaining,
		})
	}
	return rows
}

// ApplyRepayment posts a repayment against the loan and completes it when
// the balance reaches zero. The caller persists the model.
func ApplyRepayment(loan *model.StaffLoanModel, amount float64) error {
	if loan.LoanStatus != model.LoanActive {
		return ErrLoanNotActive
	}
	if amount <= 0 {
		return ErrRepaymentNotPositive
	}
	if amount > loan.LoanBalance+helper.MoneyTolerance {
		return ErrRepaymentExceedsBalance
	}

	loan.LoanAmountRepaid = helper.Round2(loan.LoanAmountRepaid + amount)
	loan.LoanBalance = helper.Round2(loan.LoanPrincipal - loan.LoanAmountRepaid)
	if loan.LoanBalance <= helper.MoneyTolerance {
		loan.LoanBalance = 0
		loan.LoanAmountRepaid = loan.LoanPrincipal
		loan.LoanStatus = model.LoanCompleted
	}
	return nil
}
