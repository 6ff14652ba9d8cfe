package dto

import (
	"strings"
	"time"

	"bursary_backend/internals/features/finance/fees/model"
)

type CreateFeeCategoryRequest struct {
	Name        string  `json:"fee_category_name" validate:"required,min=3,max=100"`
	FeeType     string  `json:"fee_category_type" validate:"required,oneof=tuition uniform feeding transport books sports development examination pta computer library laboratory lesson other"`
	Description *string `json:"fee_category_description" validate:"omitempty,max=1000"`
	IsMandatory bool    `json:"fee_category_is_mandatory"`
}

func (r *CreateFeeCategoryRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.FeeType = strings.TrimSpace(strings.ToLower(r.FeeType))
}

func (r *CreateFeeCategoryRequest) ToModel() *model.FeeCategoryModel {
	return &model.FeeCategoryModel{
		FeeCategoryName:        r.Name,
		FeeCategoryType:        model.FeeType(r.FeeType),
		FeeCategoryDescription: r.Description,
		FeeCategoryIsMandatory: r.IsMandatory,
		FeeCategoryIsActive:    true,
	}
}

type UpdateFeeCategoryRequest struct {
	Name        *string `json:"fee_category_name" validate:"omitempty,min=3,max=100"`
	FeeType     *string `json:"fee_category_type" validate:"omitempty,oneof=tuition uniform feeding transport books sports development examination pta computer library laboratory lesson other"`
	Description *string `json:"fee_category_description" validate:"omitempty,max=1000"`
	IsMandatory *bool   `json:"fee_category_is_mandatory"`
	IsActive    *bool   `json:"fee_category_is_active"`
}

func (r *UpdateFeeCategoryRequest) ApplyToModel(m *model.FeeCategoryModel) {
	if r.Name != nil {
		m.FeeCategoryName = strings.TrimSpace(*r.Name)
	}
	if r.FeeType != nil {
		m.FeeCategoryType = model.FeeType(strings.ToLower(strings.TrimSpace(*r.FeeType)))
	}
	if r.Description != nil {
		m.FeeCategoryDescription = r.Description
	}
	if r.IsMandatory != nil {
		m.FeeCategoryIsMandatory = *r.IsMandatory
	}
	if r.IsActive != nil {
		m.FeeCategoryIsActive = *r.IsActive
	}
}

type FeeCategoryResponse struct {
	ID          string    `json:"fee_category_id"`
	Name        string    `json:"fee_category_name"`
	FeeType     string    `json:"fee_category_type"`
	Description *string   `json:"fee_category_description,omitempty"`
	IsMandatory bool      `json:"fee_category_is_mandatory"`
	IsActive    bool      `json:"fee_category_is_active"`
	CreatedAt   time.Time `json:"fee_category_created_at"`
	UpdatedAt   time.Time `json:"fee_category_updated_at"`
}

func ToFeeCategoryResponse(m *model.FeeCategoryModel) *FeeCategoryResponse {
	return &FeeCategoryResponse{
		ID:          m.FeeCategoryID.String(),
		Name:        m.FeeCategoryName,
		FeeType:     string(m.FeeCategoryType),
		Description: m.FeeCategoryDescription,
		IsMandatory: m.FeeCategoryIsMandatory,
		IsActive:    m.FeeCategoryIsActive,
		CreatedAt:   m.FeeCategoryCreatedAt,
		UpdatedAt:   m.FeeCategoryUpdatedAt,
	}
}

func ToFeeCategoryResponses(models []model.FeeCategoryModel) []FeeCategoryResponse {
	out := make([]FeeCategoryResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToFeeCategoryResponse(&models[i]))
	}
	return out
}
