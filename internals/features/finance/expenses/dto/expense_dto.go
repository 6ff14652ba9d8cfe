package dto

import (
	"strings"
	"time"

	"bursary_backend/internals/features/finance/expenses/model"
	helper "bursary_backend/internals/helpers"
)

/* =======================================================
   CATEGORY DTOs
   ======================================================= */

type CreateExpenseCategoryRequest struct {
	Name        string  `json:"expense_category_name" validate:"required,min=3,max=100"`
	Group       string  `json:"expense_category_group" validate:"required,min=2,max=50"`
	Description *string `json:"expense_category_description" validate:"omitempty,max=1000"`
	BudgetCode  *string `json:"expense_category_budget_code" validate:"omitempty,len=7"`
}

func (r *CreateExpenseCategoryRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Group = strings.TrimSpace(strings.ToLower(r.Group))
	if r.BudgetCode != nil {
		code := strings.TrimSpace(strings.ToUpper(*r.BudgetCode))
		if code == "" {
			r.BudgetCode = nil
		} else {
			r.BudgetCode = &code
		}
	}
}

func (r *CreateExpenseCategoryRequest) ToModel() *model.ExpenseCategoryModel {
	return &model.ExpenseCategoryModel{
		ExpenseCategoryName:        r.Name,
		ExpenseCategoryGroup:       r.Group,
		ExpenseCategoryDescription: r.Description,
		ExpenseCategoryBudgetCode:  r.BudgetCode,
		ExpenseCategoryIsActive:    true,
	}
}

type UpdateExpenseCategoryRequest struct {
	Name        *string `json:"expense_category_name" validate:"omitempty,min=3,max=100"`
	Group       *string `json:"expense_category_group" validate:"omitempty,min=2,max=50"`
	Description *string `json:"expense_category_description" validate:"omitempty,max=1000"`
	BudgetCode  *string `json:"expense_category_budget_code" validate:"omitempty,len=7"`
	IsActive    *bool   `json:"expense_category_is_active"`
}

func (r *UpdateExpenseCategoryRequest) ApplyToModel(m *model.ExpenseCategoryModel) {
	if r.Name != nil {
		m.ExpenseCategoryName = strings.TrimSpace(*r.Name)
	}
	if r.Group != nil {
		m.ExpenseCategoryGroup = strings.TrimSpace(strings.ToLower(*r.Group))
	}
	if r.Description != nil {
		m.ExpenseCategoryDescription = r.Description
	}
	if r.BudgetCode != nil {
		code := strings.TrimSpace(strings.ToUpper(*r.BudgetCode))
		if code == "" {
			m.ExpenseCategoryBudgetCode = nil
		} else {
			m.ExpenseCategoryBudgetCode = &code
		}
	}
	if r.IsActive != nil {
		m.ExpenseCategoryIsActive = *r.IsActive
	}
}

type ExpenseCategoryResponse struct {
	ID          string    `json:"expense_category_id"`
	Name        string    `json:"expense_category_name"`
	Group       string    `json:"expense_category_group"`
	Description *string   `json:"expense_category_description,omitempty"`
	BudgetCode  *string   `json:"expense_category_budget_code,omitempty"`
	IsActive    bool      `json:"expense_category_is_active"`
	CreatedAt   time.Time `json:"expense_category_created_at"`
	UpdatedAt   time.Time `json:"expense_category_updated_at"`
}

func ToExpenseCategoryResponse(m *model.ExpenseCategoryModel) *ExpenseCategoryResponse {
	return &ExpenseCategoryResponse{
		ID:          m.ExpenseCategoryID.String(),
		Name:        m.ExpenseCategoryName,
		Group:       m.ExpenseCategoryGroup,
		Description: m.ExpenseCategoryDescription,
		BudgetCode:  m.ExpenseCategoryBudgetCode,
		IsActive:    m.ExpenseCategoryIsActive,
		CreatedAt:   m.ExpenseCategoryCreatedAt,
		UpdatedAt:   m.ExpenseCategoryUpdatedAt,
	}
}

func ToExpenseCategoryResponses(models []model.ExpenseCategoryModel) []ExpenseCategoryResponse {
	out := make([]ExpenseCategoryResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToExpenseCategoryResponse(&models[i]))
	}
	return out
}

/* =======================================================
   EXPENSE DTOs
   ======================================================= */

type CreateExpenseRequest struct {
	CategoryID    string  `json:"expense_category_id" validate:"required,uuid"`
	Amount        float64 `json:"expense_amount" validate:"required,gt=0"`
	Description   string  `json:"expense_description" validate:"required,min=3,max=1000"`
	Purpose       *string `json:"expense_purpose" validate:"omitempty,max=1000"`
	Method        string  `json:"expense_method" validate:"required,oneof=cash bank_transfer cheque pos online"`
	PaymentDate   string  `json:"expense_payment_date" validate:"required,datetime=2006-01-02"`
	VendorName    *string `json:"expense_vendor_name" validate:"omitempty,max=100"`
	VendorContact *string `json:"expense_vendor_contact" validate:"omitempty,max=100"`
	Notes         *string `json:"expense_notes" validate:"omitempty,max=1000"`
}

func (r *CreateExpenseRequest) Normalize() {
	r.Description = strings.TrimSpace(r.Description)
	r.Method = strings.TrimSpace(strings.ToLower(r.Method))
	if r.VendorName != nil {
		v := strings.TrimSpace(*r.VendorName)
		if v == "" {
			r.VendorName = nil
		} else {
			r.VendorName = &v
		}
	}
}

type RejectExpenseRequest struct {
	Notes string `json:"expense_notes" validate:"required,min=10,max=1000"`
}

type ExpenseResponse struct {
	ID            string     `json:"expense_id"`
	CategoryID    string     `json:"expense_category_id"`
	CategoryName  string     `json:"expense_category_name"`
	Amount        float64    `json:"expense_amount"`
	Description   string     `json:"expense_description"`
	Purpose       *string    `json:"expense_purpose,omitempty"`
	Method        string     `json:"expense_method"`
	PaymentDate   string     `json:"expense_payment_date"`
	VendorName    *string    `json:"expense_vendor_name,omitempty"`
	VendorContact *string    `json:"expense_vendor_contact,omitempty"`
	Reference     string     `json:"expense_reference"`
	InvoiceURL    *string    `json:"expense_invoice_url,omitempty"`
	Status        string     `json:"expense_status"`
	ApprovedBy    *string    `json:"expense_approved_by,omitempty"`
	ApprovedAt    *time.Time `json:"expense_approved_at,omitempty"`
	Notes         *string    `json:"expense_notes,omitempty"`
	RecordedBy    string     `json:"expense_recorded_by"`
	CreatedAt     time.Time  `json:"expense_created_at"`
	UpdatedAt     time.Time  `json:"expense_updated_at"`
}

func ToExpenseResponse(m *model.ExpenseModel) *ExpenseResponse {
	return &ExpenseResponse{
		ID:            m.ExpenseID.String(),
		CategoryID:    m.ExpenseCategoryID.String(),
		CategoryName:  m.ExpenseCategoryName,
		Amount:        m.ExpenseAmount,
		Description:   m.ExpenseDescription,
		Purpose:       m.ExpensePurpose,
		Method:        string(m.ExpenseMethod),
		PaymentDate:   helper.FormatDate(m.ExpensePaymentDate),
		VendorName:    m.ExpenseVendorName,
		VendorContact: m.ExpenseVendorContact,
		Reference:     m.ExpenseReference,
		InvoiceURL:    m.ExpenseInvoiceURL,
		Status:        string(m.ExpenseStatus),
		ApprovedBy:    m.ExpenseApprovedBy,
		ApprovedAt:    m.ExpenseApprovedAt,
		Notes:         m.ExpenseNotes,
		RecordedBy:    m.ExpenseRecordedBy,
		CreatedAt:     m.ExpenseCreatedAt,
		UpdatedAt:     m.ExpenseUpdatedAt,
	}
}

func ToExpenseResponses(models []model.ExpenseModel) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToExpenseResponse(&models[i]))
	}
	return out
}
