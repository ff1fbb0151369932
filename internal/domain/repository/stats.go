package repository

import (
	"context"

	"github.com/fantamatto/fantamatto/internal/domain/model"
)

// StatsRepository aggregates dashboard counters from persistent storage.
type StatsRepository interface {
	Collect(ctx context.Context) (*model.Stats, error)
}
