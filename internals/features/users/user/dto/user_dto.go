package dto

import (
	"strings"
	"time"

	"bursary_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateUserRequest struct {
	FullName string `json:"full_name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=admin bursar auditor"`
}

func (r *CreateUserRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Role = strings.TrimSpace(r.Role)
}

// ToModel converts to a model; the controller hashes the password before save.
func (r *CreateUserRequest) ToModel() *model.UserModel {
	return &model.UserModel{
		FullName: r.FullName,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
		IsActive: true,
	}
}

type UpdateUserRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=3,max=100"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin bursar auditor"`
	IsActive *bool   `json:"is_active"`
}

func (r *UpdateUserRequest) ApplyToModel(m *model.UserModel) {
	if r.FullName != nil {
		m.FullName = strings.TrimSpace(*r.FullName)
	}
	if r.Role != nil {
		m.Role = strings.TrimSpace(*r.Role)
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type UserResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToUserResponse(m *model.UserModel) *UserResponse {
	return &UserResponse{
		ID:        m.ID.String(),
		FullName:  m.FullName,
		Email:     m.Email,
		Role:      m.Role,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserResponses(models []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToUserResponse(&models[i]))
	}
	return out
}
