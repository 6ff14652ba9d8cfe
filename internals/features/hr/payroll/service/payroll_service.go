package service

import (
	"errors"
	"fmt"
	"strings"

	"bursary_backend/internals/features/hr/payroll/model"
	staffModel "bursary_backend/internals/features/hr/staff/model"
	helper "bursary_backend/internals/helpers"
)

var ErrDuplicateItemName = errors.New("allowance and deduction names must be unique within their list")

// SumPayItems totals the allowance lines.
func SumPayItems(items []model.PayItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Amount
	}
	return helper.Round2(sum)
}

// SumDeductions totals the deduction lines.
func SumDeductions(items []model.DeductionItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Amount
	}
	return helper.Round2(sum)
}

// ComputeGross is basic salary plus all allowances.
func ComputeGross(basic float64, allowances []model.PayItem) float64 {
	return helper.Round2(basic + SumPayItems(allowances))
}

// ComputeNet is gross minus all deductions.
func ComputeNet(basic float64, allowances []model.PayItem, deductions []model.DeductionItem) float64 {
	return helper.Round2(basic + SumPayItems(allowances) - SumDeductions(deductions))
}

// ValidateItemNames rejects duplicate names within the allowance list and
// within the deduction list. Payslips with two lines called the same thing
// cannot be audited.
func ValidateItemNames(allowances []model.PayItem, deductions []model.DeductionItem) error {
	seen := make(map[string]struct{}, len(allowances))
	for _, it := range allowances {
		key := strings.ToLower(strings.TrimSpace(it.Name))
		if _, dup := seen[key]; dup {
			return ErrDuplicateItemName
		}
		seen[key] = struct{}{}
	}
	seen = make(map[string]struct{}, len(deductions))
	for _, it := range deductions {
		key := strings.ToLower(strings.TrimSpace(it.Name))
		if _, dup := seen[key]; dup {
			return ErrDuplicateItemName
		}
		seen[key] = struct{}{}
	}
	return nil
}

// PayrollDraft is the prepared payslip the bursar can edit before creating
// the salary payment.
type PayrollDraft struct {
	Basic      float64               `json:"salary_basic"`
	Allowances []model.PayItem       `json:"salary_allowances"`
	Deductions []model.DeductionItem `json:"salary_deductions"`
	Gross      float64               `json:"salary_gross"`
	Net        float64               `json:"salary_net"`
	BonusIDs   []string              `json:"bonus_ids"`
	PenaltyIDs []string              `json:"penalty_ids"`
	LoanIDs    []string              `json:"loan_ids"`
}

// PreparePayroll assembles a draft payslip: the staff member's basic salary,
// their recurring allowances, every pending bonus as an allowance line, every
// pending penalty as a deduction line, and one installment per active loan.
func PreparePayroll(
	staff *staffModel.StaffMemberModel,
	bonuses []model.StaffBonusModel,
	penalties []model.StaffPenaltyModel,
	loans []model.StaffLoanModel,
) PayrollDraft {
	draft := PayrollDraft{
		Basic:      staff.StaffBasicSalary,
		Allowances: []model.PayItem{},
		Deductions: []model.DeductionItem{},
		BonusIDs:   []string{},
		PenaltyIDs: []string{},
		LoanIDs:    []string{},
	}

	for _, a := range staff.RecurringAllowances() {
		draft.Allowances = append(draft.Allowances, model.PayItem{
			Name:      a.Name,
			Amount:    helper.Round2(a.Amount),
			IsTaxable: true,
		})
	}
	for i := range bonuses {
		b := &bonuses[i]
		draft.Allowances = append(draft.Allowances, model.PayItem{
			Name:      fmt.Sprintf("Bonus: %s", b.BonusDescription),
			Amount:    helper.Round2(b.BonusAmount),
			IsTaxable: true,
		})
		draft.BonusIDs = append(draft.BonusIDs, b.BonusID.String())
	}
	for i := range penalties {
		p := &penalties[i]
		draft.Deductions = append(draft.Deductions, model.DeductionItem{
			Name:        fmt.Sprintf("Penalty: %s", p.PenaltyDescription),
			Amount:      helper.Round2(p.PenaltyAmount),
			IsStatutory: false,
		})
		draft.PenaltyIDs = append(draft.PenaltyIDs, p.PenaltyID.String())
	}
	for i := range loans {
		l := &loans[i]
		installment := NextInstallment(l)
		if installment <= 0 {
			continue
		}
		draft.Deductions = append(draft.Deductions, model.DeductionItem{
			Name:        fmt.Sprintf("Loan repayment (%d/%d)", repaidInstallments(l)+1, l.LoanTermMonths),
			Amount:      installment,
			IsStatutory: false,
		})
		draft.LoanIDs = append(draft.LoanIDs, l.LoanID.String())
	}

	draft.Gross = ComputeGross(draft.Basic, draft.Allowances)
	draft.Net = ComputeNet(draft.Basic, draft.Allowances, draft.Deductions)
	return draft
}

// repaidInstallments estimates how many installments the loan has absorbed,
// for the (n/term) label only.
func repaidInstallments(loan *model.StaffLoanModel) int {
	if loan.LoanMonthlyDeduction <= 0 {
		return 0
	}
	n := int((loan.LoanAmountRepaid + helper.MoneyTolerance) / loan.LoanMonthlyDeduction)
	if n > loan.LoanTermMonths {
		n = loan.LoanTermMonths
	}
	return n
}
