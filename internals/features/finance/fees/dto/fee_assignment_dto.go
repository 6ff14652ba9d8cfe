package dto

import (
	"time"

	"bursary_backend/internals/features/finance/fees/model"
	helper "bursary_backend/internals/helpers"
)

type AssignFeesRequest struct {
	StudentID           string   `json:"fee_assignment_student_id" validate:"required,uuid"`
	FeeStructureID      string   `json:"fee_assignment_fee_structure_id" validate:"required,uuid"`
	SelectedCategoryIDs []string `json:"selected_category_ids" validate:"omitempty,dive,uuid"`
	ScholarshipID       *string  `json:"fee_assignment_scholarship_id" validate:"omitempty,uuid"`
	DueDate             *string  `json:"fee_assignment_due_date" validate:"omitempty,datetime=2006-01-02"`
}

type ApplyScholarshipRequest struct {
	ScholarshipID string `json:"scholarship_id" validate:"required,uuid"`
}

type FeeAssignmentResponse struct {
	ID             string                    `json:"fee_assignment_id"`
	StudentID      string                    `json:"fee_assignment_student_id"`
	StudentName    string                    `json:"fee_assignment_student_name"`
	ClassID        string                    `json:"fee_assignment_class_id"`
	FeeStructureID string                    `json:"fee_assignment_fee_structure_id"`
	AcademicYear   string                    `json:"fee_assignment_academic_year"`
	Term           string                    `json:"fee_assignment_term"`
	Items          []model.FeeAssignmentItem `json:"fee_assignment_items"`
	OriginalAmount float64                   `json:"fee_assignment_original_amount"`

	ScholarshipID    *string  `json:"fee_assignment_scholarship_id,omitempty"`
	ScholarshipName  *string  `json:"fee_assignment_scholarship_name,omitempty"`
	ScholarshipType  *string  `json:"fee_assignment_scholarship_type,omitempty"`
	ScholarshipValue *float64 `json:"fee_assignment_scholarship_value,omitempty"`
	DiscountAmount   float64  `json:"fee_assignment_discount_amount"`

	TotalAmount float64   `json:"fee_assignment_total_amount"`
	AmountPaid  float64   `json:"fee_assignment_amount_paid"`
	Balance     float64   `json:"fee_assignment_balance"`
	Status      string    `json:"fee_assignment_status"`
	DueDate     *string   `json:"fee_assignment_due_date,omitempty"`
	CreatedAt   time.Time `json:"fee_assignment_created_at"`
	UpdatedAt   time.Time `json:"fee_assignment_updated_at"`
}

func ToFeeAssignmentResponse(m *model.FeeAssignmentModel) *FeeAssignmentResponse {
	resp := &FeeAssignmentResponse{
		ID:               m.FeeAssignmentID.String(),
		StudentID:        m.FeeAssignmentStudentID.String(),
		StudentName:      m.FeeAssignmentStudentName,
		ClassID:          m.FeeAssignmentClassID.String(),
		FeeStructureID:   m.FeeAssignmentFeeStructureID.String(),
		AcademicYear:     m.FeeAssignmentAcademicYear,
		Term:             string(m.FeeAssignmentTerm),
		Items:            m.FeeAssignmentItems,
		OriginalAmount:   m.FeeAssignmentOriginalAmount,
		ScholarshipName:  m.FeeAssignmentScholarshipName,
		ScholarshipType:  m.FeeAssignmentScholarshipType,
		ScholarshipValue: m.FeeAssignmentScholarshipValue,
		DiscountAmount:   m.FeeAssignmentDiscountAmount,
		TotalAmount:      m.FeeAssignmentTotalAmount,
		AmountPaid:       m.FeeAssignmentAmountPaid,
		Balance:          m.FeeAssignmentBalance,
		Status:           string(m.FeeAssignmentStatus),
		CreatedAt:        m.FeeAssignmentCreatedAt,
		UpdatedAt:        m.FeeAssignmentUpdatedAt,
	}
	if m.FeeAssignmentScholarshipID != nil {
		id := m.FeeAssignmentScholarshipID.String()
		resp.ScholarshipID = &id
	}
	if m.FeeAssignmentDueDate != nil {
		due := helper.FormatDate(*m.FeeAssignmentDueDate)
		resp.DueDate = &due
	}
	return resp
}

func ToFeeAssignmentResponses(models []model.FeeAssignmentModel) []FeeAssignmentResponse {
	out := make([]FeeAssignmentResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToFeeAssignmentResponse(&models[i]))
	}
	return out
}
