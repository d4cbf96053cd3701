package user

import (
	"context"

	"homeserve/models"
)

// RegisterRequest carries a new account. Provider registrations additionally
// carry the category, working hours and location; providers start
// unverified and become matchable only after an administrator verifies them.
type RegisterRequest struct {
	Name            string              `json:"name" binding:"required"`
	Email           string              `json:"email" binding:"required"`
	Password        string              `json:"password" binding:"required"`
	Role            string              `json:"role"`
	Phone           string              `json:"phone"`
	ServiceCategory string              `json:"serviceCategory"`
	WorkingHours    models.WorkingHours `json:"workingHours"`
	Lat             float64             `json:"lat"`
	Lng             float64             `json:"lng"`
}

// AuthResponse pairs a signed token with the public account view.
type AuthResponse struct {
	Token string         `json:"token"`
	User  models.UserDTO `json:"user"`
}

// UserService manages accounts and their provider-facing mutations.
type UserService interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	GetByID(ctx context.Context, id string) (*models.User, error)

	UpdateLocation(ctx context.Context, id string, lng, lat float64) error
	UpdatePushToken(ctx context.Context, id, token string) error
	UpdateWorkingHours(ctx context.Context, id string, hours models.WorkingHours) error
	UpdateProfileImage(ctx context.Context, id, imageURL string) error

	// VerifyProvider flips the administrator verification flag that gates
	// matchability.
	VerifyProvider(ctx context.Context, id string) (*models.User, error)
}
