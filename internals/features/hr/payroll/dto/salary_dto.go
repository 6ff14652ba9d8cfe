package dto

import (
	"strings"
	"time"

	"bursary_backend/internals/features/hr/payroll/model"
	helper "bursary_backend/internals/helpers"
)

type SalaryPayItemRequest struct {
	Name      string  `json:"name" validate:"required,min=2,max=100"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	IsTaxable bool    `json:"is_taxable"`
}

type SalaryDeductionItemRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	IsStatutory bool    `json:"is_statutory"`
}

type CreateSalaryPaymentRequest struct {
	StaffID     string                       `json:"salary_staff_id" validate:"required,uuid"`
	PaymentDate string                       `json:"salary_payment_date" validate:"required,datetime=2006-01-02"`
	PeriodStart string                       `json:"salary_period_start" validate:"required,datetime=2006-01-02"`
	PeriodEnd   string                       `json:"salary_period_end" validate:"required,datetime=2006-01-02"`
	Basic       float64                      `json:"salary_basic" validate:"required,gt=0"`
	Allowances  []SalaryPayItemRequest       `json:"salary_allowances" validate:"omitempty,max=30,dive"`
	Deductions  []SalaryDeductionItemRequest `json:"salary_deductions" validate:"omitempty,max=30,dive"`
	Method      string                       `json:"salary_method" validate:"required,oneof=bank_transfer cash cheque"`
	Notes       *string                      `json:"salary_notes" validate:"omitempty,max=1000"`
	BonusIDs    []string                     `json:"bonus_ids" validate:"omitempty,max=20,dive,uuid"`
	PenaltyIDs  []string                     `json:"penalty_ids" validate:"omitempty,max=20,dive,uuid"`
	LoanIDs     []string                     `json:"loan_ids" validate:"omitempty,max=10,dive,uuid"`
}

func (r *CreateSalaryPaymentRequest) Normalize() {
	r.Method = strings.TrimSpace(strings.ToLower(r.Method))
}

func (r *CreateSalaryPaymentRequest) ToPayItems() []model.PayItem {
	items := make([]model.PayItem, 0, len(r.Allowances))
	for _, a := range r.Allowances {
		items = append(items, model.PayItem{
			Name:      strings.TrimSpace(a.Name),
			Amount:    helper.Round2(a.Amount),
			IsTaxable: a.IsTaxable,
		})
	}
	return items
}

func (r *CreateSalaryPaymentRequest) ToDeductionItems() []model.DeductionItem {
	items := make([]model.DeductionItem, 0, len(r.Deductions))
	for _, d := range r.Deductions {
		items = append(items, model.DeductionItem{
			Name:        strings.TrimSpace(d.Name),
			Amount:      helper.Round2(d.Amount),
			IsStatutory: d.IsStatutory,
		})
	}
	return items
}

type SalaryPaymentResponse struct {
	ID          string                `json:"salary_id"`
	StaffID     string                `json:"salary_staff_id"`
	StaffName   string                `json:"salary_staff_name"`
	StaffNumber string                `json:"salary_staff_number"`
	PaymentDate string                `json:"salary_payment_date"`
	PeriodStart string                `json:"salary_period_start"`
	PeriodEnd   string                `json:"salary_period_end"`
	Basic       float64               `json:"salary_basic"`
	Allowances  []model.PayItem       `json:"salary_allowances"`
	Deductions  []model.DeductionItem `json:"salary_deductions"`
	Gross       float64               `json:"salary_gross"`
	Net         float64               `json:"salary_net"`
	Method      string                `json:"salary_method"`
	Reference   string                `json:"salary_reference"`
	Status      string                `json:"salary_status"`
	Notes       *string               `json:"salary_notes,omitempty"`
	ProcessedBy *string               `json:"salary_processed_by,omitempty"`
	ProcessedAt *time.Time            `json:"salary_processed_at,omitempty"`
	CreatedAt   time.Time             `json:"salary_created_at"`
	UpdatedAt   time.Time             `json:"salary_updated_at"`
}

func ToSalaryPaymentResponse(m *model.SalaryPaymentModel) *SalaryPaymentResponse {
	return &SalaryPaymentResponse{
		ID:          m.SalaryID.String(),
		StaffID:     m.SalaryStaffID.String(),
		StaffName:   m.SalaryStaffName,
		StaffNumber: m.SalaryStaffNumber,
		PaymentDate: helper.FormatDate(m.SalaryPaymentDate),
		PeriodStart: helper.FormatDate(m.SalaryPeriodStart),
		PeriodEnd:   helper.FormatDate(m.SalaryPeriodEnd),
		Basic:       m.SalaryBasic,
		Allowances:  m.SalaryAllowances,
		Deductions:  m.SalaryDeductions,
		Gross:       m.SalaryGross,
		Net:         m.SalaryNet,
		Method:      string(m.SalaryMethod),
		Reference:   m.SalaryReference,
		Status:      string(m.SalaryStatus),
		Notes:       m.SalaryNotes,
		ProcessedBy: m.SalaryProcessedBy,
		ProcessedAt: m.SalaryProcessedAt,
		CreatedAt:   m.SalaryCreatedAt,
		UpdatedAt:   m.SalaryUpdatedAt,
	}
}

func ToSalaryPaymentResponses(models []model.SalaryPaymentModel) []SalaryPaymentResponse {
	out := make([]SalaryPaymentResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToSalaryPaymentResponse(&models[i]))
	}
	return out
}
