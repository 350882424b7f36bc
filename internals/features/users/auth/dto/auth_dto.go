package dto

import (
	"github.com/google/uuid"

	"ebarangay_backend/internals/features/users/auth/model"
)

// ============================
// Request DTOs
// ============================

type LoginRequest struct {
	UserName string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// ResetPasswordRequest is the household-number recovery path for accounts
// without a usable email.
type ResetPasswordRequest struct {
	UserName        string `json:"username" validate:"required,min=3,max=50"`
	HouseholdNumber string `json:"household_number" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// ============================
// Response DTOs
// ============================

type UserDTO struct {
	ID       uuid.UUID `json:"id"`
	UserName string    `json:"username"`
	Role     string    `json:"role"`
}

type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		ID:       m.ID,
		UserName: m.UserName,
		Role:     m.Role,
	}
}
