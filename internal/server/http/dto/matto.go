package dto

import (
	"time"

	"github.com/fantamatto/fantamatto/internal/domain/model"
)

// MattoCreateRequest describes a new submission payload. PhotoData is an
// opaque encoded blob and is not validated.
type MattoCreateRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	Username    string `json:"username" binding:"required"`
	PhotoData   string `json:"photo_data" binding:"required"`
	Nickname    string `json:"nickname"`
	Description string `json:"description"`
	Rarity      string `json:"rarity"`
}

// MattoUpdateRequest describes a partial admin-side submission mutation.
type MattoUpdateRequest struct {
	Nickname    *string `json:"nickname"`
	Description *string `json:"description"`
	Rarity      *string `json:"rarity"`
	IsApproved  *bool   `json:"is_approved"`
}

// MattoResponse represents a submission record at the API boundary.
type MattoResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	PhotoData   string    `json:"photo_data"`
	Nickname    string    `json:"nickname"`
	Description string    `json:"description"`
	Rarity      string    `json:"rarity"`
	Points      int64     `json:"points"`
	IsApproved  bool      `json:"is_approved"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToMattoResponse converts a domain matto into its transport shape.
func ToMattoResponse(matto model.Matto) MattoResponse {
	return MattoResponse{
		ID:          matto.ID,
		UserID:      matto.UserID,
		Username:    matto.Username,
		PhotoData:   matto.PhotoData,
		Nickname:    matto.Nickname,
		Description: matto.Description,
		Rarity:      matto.Rarity,
		Points:      matto.Points,
		IsApproved:  matto.IsApproved,
		CreatedAt:   matto.CreatedAt,
	}
}

// ToMattoResponses converts a slice of domain matti.
func ToMattoResponses(matti []model.Matto) []MattoResponse {
	result := make([]MattoResponse, 0, len(matti))
	for _, m := range matti {
		result = append(result, ToMattoResponse(m))
	}
	return result
}
