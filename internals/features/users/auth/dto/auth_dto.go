package dto

import (
	userModel "bursary_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type AuthUser struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func ToAuthUser(m *userModel.UserModel) AuthUser {
	return AuthUser{
		ID:       m.ID.String(),
		FullName: m.FullName,
		Email:    m.Email,
		Role:     m.Role,
	}
}
