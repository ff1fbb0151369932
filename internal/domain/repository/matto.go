package repository

import (
	"context"

	"github.com/fantamatto/fantamatto/internal/domain/model"
)

// MattoRepository describes persistence operations for matto submissions.
type MattoRepository interface {
	Create(ctx context.Context, matto *model.Matto) (*model.Matto, error)
	GetByID(ctx context.Context, id string) (*model.Matto, error)
	ListApproved(ctx context.Context) ([]model.Matto, error)
	ListApprovedByUser(ctx context.Context, userID string) ([]model.Matto, error)
	ListAll(ctx context.Context) ([]model.Matto, error)
	Update(ctx context.Context, id string, update model.MattoUpdate) (*model.Matto, error)
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
}
