package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"bursary_backend/internals/features/hr/payroll/model"
	staffModel "bursary_backend/internals/features/hr/staff/model"
)

func TestComputeGrossAndNet(t *testing.T) {
	allowances := []model.PayItem{
		{Name: "Housing", Amount: 30_000, IsTaxable: true},
		{Name: "Transport", Amount: 10_000, IsTaxable: true},
	}
	deductions := []model.DeductionItem{
		{Name: "Pension", Amount: 9_600, IsStatutory: true},
		{Name: "PAYE", Amount: 7_400, IsStatutory: true},
	}

	assert.InDelta(t, 40_000, SumPayItems(allowances), 0.001)
	assert.InDelta(t, 17_000, SumDeductions(deductions), 0.001)
	assert.InDelta(t, 160_000, ComputeGross(120_000, allowances), 0.001)
	assert.InDelta(t, 143_000, ComputeNet(120_000, allowances, deductions), 0.001)

	assert.InDelta(t, 120_000, ComputeGross(120_000, nil), 0.001)
	assert.InDelta(t, 120_000, ComputeNet(120_000, nil, nil), 0.001)
}

func TestValidateItemNames(t *testing.T) {
	tests := []struct {
		name       string
		allowances []model.PayItem
		deductions []model.DeductionItem
		wantErr    error
	}{
		{
			name: "unique names pass",
			allowances: []model.PayItem{
				{Name: "Housing", Amount: 1},
				{Name: "Transport", Amount: 1},
			},
			deductions: []model.DeductionItem{
				{Name: "Pension", Amount: 1},
			},
		},
		{
			name: "duplicate allowance differs only by case and spacing",
			allowances: []model.PayItem{
				{Name: "Housing", Amount: 1},
				{Name: "  housing ", Amount: 2},
			},
			wantErr: ErrDuplicateItemName,
		},
		{
			name: "duplicate deduction",
			deductions: []model.DeductionItem{
				{Name: "PAYE", Amount: 1},
				{Name: "PAYE", Amount: 2},
			},
			wantErr: ErrDuplicateItemName,
		},
		{
			name: "same name across the two lists is fine",
			allowances: []model.PayItem{
				{Name: "Housing", Amount: 1},
			},
			deductions: []model.DeductionItem{
				{Name: "Housing", Amount: 1},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateItemNames(tt.allowances, tt.deductions)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestPreparePayroll(t *testing.T) {
	staff := &staffModel.StaffMemberModel{
		StaffID:          uuid.New(),
		StaffBasicSalary: 120_000,
		StaffAllowances: datatypes.JSONSlice[staffModel.StaffAllowance]{
			{Name: "Housing", Amount: 30_000, IsRecurring: true},
			{Name: "Relocation", Amount: 50_000, IsRecurring: false},
		},
	}
	bonus := model.StaffBonusModel{
		BonusID:          uuid.New(),
		BonusDescription: "Exam supervision",
		BonusAmount:      10_000,
	}
	penalty := model.StaffPenaltyModel{
		PenaltyID:          uuid.New(),
		PenaltyDescription: "Lateness",
		PenaltyAmount:      2_000,
	}
	loan := model.StaffLoanModel{
		LoanID:               uuid.New(),
		LoanPrincipal:        60_000,
		LoanTermMonths:       12,
		LoanMonthlyDeduction: 5_000,
		LoanAmountRepaid:     10_000,
		LoanBalance:          50_000,
		LoanStartDate:        time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		LoanStatus:           model.LoanActive,
	}
	settledLoan := model.StaffLoanModel{
		LoanID:         uuid.New(),
		LoanPrincipal:  20_000,
		LoanTermMonths: 4,
		LoanBalance:    0,
		LoanStatus:     model.LoanActive,
	}

	draft := PreparePayroll(staff,
		[]model.StaffBonusModel{bonus},
		[]model.StaffPenaltyModel{penalty},
		[]model.StaffLoanModel{loan, settledLoan},
	)

	assert.InDelta(t, 120_000, draft.Basic, 0.001)

	require.Len(t, draft.Allowances, 2, "recurring allowance plus bonus; one-off allowance stays out")
	assert.Equal(t, "Housing", draft.Allowances[0].Name)
	assert.True(t, draft.Allowances[0].IsTaxable)
	assert.Equal(t, "Bonus: Exam supervision", draft.Allowances[1].Name)
	assert.InDelta(t, 10_000, draft.Allowances[1].Amount, 0.001)

	require.Len(t, draft.Deductions, 2)
	assert.Equal(t, "Penalty: Lateness", draft.Deductions[0].Name)
	assert.InDelta(t, 2_000, draft.Deductions[0].Amount, 0.001)
	assert.Equal(t, "Loan repayment (3/12)", draft.Deductions[1].Name)
	assert.InDelta(t, 5_000, draft.Deductions[1].Amount, 0.001)

	assert.Equal(t, []string{bonus.BonusID.String()}, draft.BonusIDs)
	assert.Equal(t, []string{penalty.PenaltyID.String()}, draft.PenaltyIDs)
	assert.Equal(t, []string{loan.LoanID.String()}, draft.LoanIDs, "a loan with nothing left to deduct is skipped")

	assert.InDelta(t, 160_000, draft.Gross, 0.001)
	assert.InDelta(t, 153_000, draft.Net, 0.001)
}

func TestPreparePayrollEmptyInputs(t *testing.T) {
	staff := &staffModel.StaffMemberModel{StaffBasicSalary: 80_000}

	draft := PreparePayroll(staff, nil, nil, nil)

	assert.Empty(t, draft.Allowances)
	assert.Empty(t, draft.Deductions)
	assert.Empty(t, draft.BonusIDs)
	assert.InDelta(t, 80_000, draft.Gross, 0.001)
	assert.InDelta(t, 80_000, draft.Net, 0.001)
}
