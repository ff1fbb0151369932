package dto

import "github.com/fantamatto/fantamatto/internal/domain/model"

// AdminLoginRequest carries the admin secret.
type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// AdminLoginResponse confirms a successful admin login.
type AdminLoginResponse struct {
	Message string `json:"message"`
	IsAdmin bool   `json:"is_admin"`
}

// StatsResponse aggregates dashboard counters.
type StatsResponse struct {
	TotalUsers   int64 `json:"total_users"`
	TotalMatti   int64 `json:"total_matti"`
	TotalPoints  int64 `json:"total_points"`
	PendingMatti int64 `json:"pending_matti"`
}

// MessageResponse is a plain human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ToStatsResponse converts domain stats into their transport shape.
func ToStatsResponse(stats model.Stats) StatsResponse {
	return StatsResponse{
		TotalUsers:   stats.TotalUsers,
		TotalMatti:   stats.TotalMatti,
		TotalPoints:  stats.TotalPoints,
		PendingMatti: stats.PendingMatti,
	}
}
