package dto

import (
	"strings"
	"time"

	"bursary_backend/internals/features/finance/payments/model"
	helper "bursary_backend/internals/helpers"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

type PaymentAllocationRequest struct {
	CategoryID string  `json:"category_id" validate:"required,uuid"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
}

type CreatePaymentRequest struct {
	FeeAssignmentID string                     `json:"payment_fee_assignment_id" validate:"required,uuid"`
	Amount          float64                    `json:"payment_amount" validate:"required,gt=0"`
	Method          string                     `json:"payment_method" validate:"required,oneof=cash bank_transfer pos online cheque"`
	PaymentDate     string                     `json:"payment_date" validate:"required,datetime=2006-01-02"`
	Allocations     []PaymentAllocationRequest `json:"payment_allocations" validate:"required,min=1,max=20,dive"`
	TransactionID   *string                    `json:"payment_transaction_id" validate:"omitempty,max=100"`
	PaidBy          *string                    `json:"payment_paid_by" validate:"omitempty,max=100"`
	Status          *string                    `json:"payment_status" validate:"omitempty,oneof=pending confirmed"`
	Notes           *string                    `json:"payment_notes" validate:"omitempty,max=1000"`
}

func (r *CreatePaymentRequest) Normalize() {
	r.Method = strings.TrimSpace(strings.ToLower(r.Method))
	if r.PaidBy != nil {
		p := strings.TrimSpace(*r.PaidBy)
		if p == "" {
			r.PaidBy = nil
		} else {
			r.PaidBy = &p
		}
	}
}

type PaymentNotesRequest struct {
	Notes string `json:"payment_notes" validate:"required,min=1,max=1000"`
}

type UpdatePaymentNotesRequest struct {
	Notes *string `json:"payment_notes" validate:"omitempty,max=1000"`
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type PaymentResponse struct {
	ID              string                    `json:"payment_id"`
	StudentID       string                    `json:"payment_student_id"`
	StudentName     string                    `json:"payment_student_name"`
	ClassID         string                    `json:"payment_class_id"`
	ClassName       string                    `json:"payment_class_name"`
	FeeAssignmentID string                    `json:"payment_fee_assignment_id"`
	Amount          float64                   `json:"payment_amount"`
	Method          string                    `json:"payment_method"`
	PaymentDate     string                    `json:"payment_date"`
	Allocations     []model.PaymentAllocation `json:"payment_allocations"`
	Reference       string                    `json:"payment_reference"`
	TransactionID   *string                   `json:"payment_transaction_id,omitempty"`
	PaidBy          *string                   `json:"payment_paid_by,omitempty"`
	Status          string                    `json:"payment_status"`
	Notes           *string                   `json:"payment_notes,omitempty"`
	ReceiptURL      *string                   `json:"payment_receipt_url,omitempty"`
	RecordedBy      string                    `json:"payment_recorded_by"`
	CreatedAt       time.Time                 `json:"payment_created_at"`
	UpdatedAt       time.Time                 `json:"payment_updated_at"`
}

func ToPaymentResponse(m *model.PaymentModel) *PaymentResponse {
	return &PaymentResponse{
		ID:              m.PaymentID.String(),
		StudentID:       m.PaymentStudentID.String(),
		StudentName:     m.PaymentStudentName,
		ClassID:         m.PaymentClassID.String(),
		ClassName:       m.PaymentClassName,
		FeeAssignmentID: m.PaymentFeeAssignmentID.String(),
		Amount:          m.PaymentAmount,
		Method:          string(m.PaymentMethod),
		PaymentDate:     helper.FormatDate(m.PaymentDate),
		Allocations:     m.PaymentAllocations,
		Reference:       m.PaymentReference,
		TransactionID:   m.PaymentTransactionID,
		PaidBy:          m.PaymentPaidBy,
		Status:          string(m.PaymentStatus),
		Notes:           m.PaymentNotes,
		ReceiptURL:      m.PaymentReceiptURL,
		RecordedBy:      m.PaymentRecordedBy,
		CreatedAt:       m.PaymentCreatedAt,
		UpdatedAt:       m.PaymentUpdatedAt,
	}
}

func ToPaymentResponses(models []model.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToPaymentResponse(&models[i]))
	}
	return out
}
