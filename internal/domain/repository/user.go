package repository

import (
	"context"

	"github.com/fantamatto/fantamatto/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, username, passwordHash string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Leaderboard(ctx context.Context) ([]model.User, error)
	ListAll(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id string, update model.UserUpdate) (*model.User, error)
	Delete(ctx context.Context, id string) error
	AdjustPoints(ctx context.Context, id string, delta int64) error
	ResetAllPoints(ctx context.Context) error
}
