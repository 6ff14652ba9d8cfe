package dto

import (
	"time"

	"bursary_backend/internals/features/hr/payroll/model"
	helper "bursary_backend/internals/helpers"
)

type CreateLoanRequest struct {
	StaffID    string  `json:"loan_staff_id" validate:"required,uuid"`
	Principal  float64 `json:"loan_principal" validate:"required,gt=0"`
	Reason     *string `json:"loan_reason" validate:"omitempty,max=500"`
	TermMonths int     `json:"loan_term_months" validate:"required,gte=1,lte=60"`
	StartDate  string  `json:"loan_start_date" validate:"required,datetime=2006-01-02"`
}

type LoanRepaymentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type LoanResponse struct {
	ID               string    `json:"loan_id"`
	StaffID          string    `json:"loan_staff_id"`
	StaffName        string    `json:"loan_staff_name"`
	Principal        float64   `json:"loan_principal"`
	Reason           *string   `json:"loan_reason,omitempty"`
	TermMonths       int       `json:"loan_term_months"`
	MonthlyDeduction float64   `json:"loan_monthly_deduction"`
	AmountRepaid     float64   `json:"loan_amount_repaid"`
	Balance          float64   `json:"loan_balance"`
	StartDate        string    `json:"loan_start_date"`
	Status           string    `json:"loan_status"`
	CreatedAt        time.Time `json:"loan_created_at"`
	UpdatedAt        time.Time `json:"loan_updated_at"`
}

func ToLoanResponse(m *model.StaffLoanModel) *LoanResponse {
	return &LoanResponse{
		ID:               m.LoanID.String(),
		StaffID:          m.LoanStaffID.String(),
		StaffName:        m.LoanStaffName,
		Principal:        m.LoanPrincipal,
		Reason:           m.LoanReason,
		TermMonths:       m.LoanTermMonths,
		MonthlyDeduction: m.LoanMonthlyDeduction,
		AmountRepaid:     m.LoanAmountRepaid,
		Balance:          m.LoanBalance,
		StartDate:        helper.FormatDate(m.LoanStartDate),
		Status:           string(m.LoanStatus),
		CreatedAt:        m.LoanCreatedAt,
		UpdatedAt:        m.LoanUpdatedAt,
	}
}

func ToLoanResponses(models []model.StaffLoanModel) []LoanResponse {
	out := make([]LoanResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToLoanResponse(&models[i]))
	}
	return out
}
