package dto

import (
	"strings"
	"time"

	"bursary_backend/internals/features/finance/fees/model"
)

type FeeStructureItemRequest struct {
	CategoryID string  `json:"category_id" validate:"required,uuid"`
	Amount     float64 `json:"amount" validate:"gte=0"`
}

type CreateFeeStructureRequest struct {
	ClassID      string                    `json:"fee_structure_class_id" validate:"required,uuid"`
	AcademicYear string                    `json:"fee_structure_academic_year" validate:"required"`
	Term         string                    `json:"fee_structure_term" validate:"required,oneof=first second third"`
	Items        []FeeStructureItemRequest `json:"fee_structure_items" validate:"required,min=1,dive"`
}

func (r *CreateFeeStructureRequest) Normalize() {
	r.AcademicYear = strings.TrimSpace(r.AcademicYear)
	r.Term = strings.TrimSpace(strings.ToLower(r.Term))
}

type UpdateFeeStructureRequest struct {
	Items    []FeeStructureItemRequest `json:"fee_structure_items" validate:"omitempty,min=1,dive"`
	IsActive *bool                     `json:"fee_structure_is_active"`
}

type FeeStructureResponse struct {
	ID           string                   `json:"fee_structure_id"`
	ClassID      string                   `json:"fee_structure_class_id"`
	ClassName    string                   `json:"fee_structure_class_name,omitempty"`
	AcademicYear string                   `json:"fee_structure_academic_year"`
	Term         string                   `json:"fee_structure_term"`
	Items        []model.FeeStructureItem `json:"fee_structure_items"`
	TotalAmount  float64                  `json:"fee_structure_total_amount"`
	IsActive     bool                     `json:"fee_structure_is_active"`
	CreatedAt    time.Time                `json:"fee_structure_created_at"`
	UpdatedAt    time.Time                `json:"fee_structure_updated_at"`
}

func ToFeeStructureResponse(m *model.FeeStructureModel, className string) *FeeStructureResponse {
	return &FeeStructureResponse{
		ID:           m.FeeStructureID.String(),
		ClassID:      m.FeeStructureClassID.String(),
		ClassName:    className,
		AcademicYear: m.FeeStructureAcademicYear,
		Term:         string(m.FeeStructureTerm),
		Items:        m.FeeStructureItems,
		TotalAmount:  m.FeeStructureTotalAmount,
		IsActive:     m.FeeStructureIsActive,
		CreatedAt:    m.FeeStructureCreatedAt,
		UpdatedAt:    m.FeeStructureUpdatedAt,
	}
}

func ToFeeStructureResponses(models []model.FeeStructureModel) []FeeStructureResponse {
	out := make([]FeeStructureResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToFeeStructureResponse(&models[i], ""))
	}
	return out
}
