package dto

import "artizia_backend/internal/models"

type RegisterRequest struct {
	Name                 string `json:"name" validate:"required,max=255"`
	Email                string `json:"email" validate:"required,email,max=255"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
	Role                 string `json:"role" validate:"omitempty,oneof=vendor customer"`
	Phone                string `json:"phone" validate:"omitempty,max=20"`

	// Vendor registration fields
	BusinessName        string `json:"business_name" validate:"required_if=Role vendor,max=255"`
	BusinessDescription string `json:"business_description"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by register, login and the current-user endpoint.
type AuthResponse struct {
	User         *models.User `json:"user"`
	Token        string       `json:"token,omitempty"`
	DashboardURL string       `json:"dashboard_url"`
}
