package dto

import (
	"strings"
	"time"

	"bursary_backend/internals/features/academics/classes/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateClassRequest struct {
	ClassName   string  `json:"class_name" validate:"required,min=2,max=50"`
	ClassLevel  string  `json:"class_level" validate:"required,min=2,max=20"`
	ClassStream *string `json:"class_stream" validate:"omitempty,max=20"`
}

func (r *CreateClassRequest) Normalize() {
	r.ClassName = strings.TrimSpace(r.ClassName)
	r.ClassLevel = strings.TrimSpace(strings.ToUpper(r.ClassLevel))
	if r.ClassStream != nil {
		s := strings.TrimSpace(*r.ClassStream)
		if s == "" {
			r.ClassStream = nil
		} else {
			r.ClassStream = &s
		}
	}
}

func (r *CreateClassRequest) ToModel() *model.ClassModel {
	return &model.ClassModel{
		ClassName:     r.ClassName,
		ClassLevel:    r.ClassLevel,
		ClassStream:   r.ClassStream,
		ClassIsActive: true,
	}
}

type UpdateClassRequest struct {
	ClassName   *string `json:"class_name" validate:"omitempty,min=2,max=50"`
	ClassLevel  *string `json:"class_level" validate:"omitempty,min=2,max=20"`
	ClassStream *string `json:"class_stream" validate:"omitempty,max=20"`
	IsActive    *bool   `json:"class_is_active"`
}

func (r *UpdateClassRequest) ApplyToModel(m *model.ClassModel) {
	if r.ClassName != nil {
		m.ClassName = strings.TrimSpace(*r.ClassName)
	}
	if r.ClassLevel != nil {
		m.ClassLevel = strings.TrimSpace(strings.ToUpper(*r.ClassLevel))
	}
	if r.ClassStream != nil {
		s := strings.TrimSpace(*r.ClassStream)
		if s == "" {
			m.ClassStream = nil
		} else {
			m.ClassStream = &s
		}
	}
	if r.IsActive != nil {
		m.ClassIsActive = *r.IsActive
	}
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type ClassResponse struct {
	ClassID     string    `json:"class_id"`
	ClassName   string    `json:"class_name"`
	ClassLevel  string    `json:"class_level"`
	ClassStream *string   `json:"class_stream,omitempty"`
	IsActive    bool      `json:"class_is_active"`
	CreatedAt   time.Time `json:"class_created_at"`
	UpdatedAt   time.Time `json:"class_updated_at"`
}

func ToClassResponse(m *model.ClassModel) *ClassResponse {
	return &ClassResponse{
		ClassID:     m.ClassID.String(),
		ClassName:   m.ClassName,
		ClassLevel:  m.ClassLevel,
		ClassStream: m.ClassStream,
		IsActive:    m.ClassIsActive,
		CreatedAt:   m.ClassCreatedAt,
		UpdatedAt:   m.ClassUpdatedAt,
	}
}

func ToClassResponses(models []model.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToClassResponse(&models[i]))
	}
	return out
}
