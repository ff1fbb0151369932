package dto

import (
	"time"

	"github.com/fantamatto/fantamatto/internal/domain/model"
)

// CredentialsRequest describes username/password payload for registration and login.
type CredentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse represents a user record at the API boundary. The password
// hash never leaves the service.
type UserResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	TotalPoints int64     `json:"total_points"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// SessionResponse carries the user together with their session token.
type SessionResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// UserUpdateRequest describes a partial admin-side user mutation.
type UserUpdateRequest struct {
	Username    *string `json:"username"`
	Password    *string `json:"password"`
	TotalPoints *int64  `json:"total_points"`
	IsActive    *bool   `json:"is_active"`
}

// ToUserResponse converts a domain user into its transport shape.
func ToUserResponse(user model.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		TotalPoints: user.TotalPoints,
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt,
	}
}
