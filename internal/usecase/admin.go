package usecase

import (
	"context"
	"crypto/subtle"

	domainErrors "github.com/fantamatto/fantamatto/internal/domain/errors"
	"github.com/fantamatto/fantamatto/internal/domain/model"
	"github.com/fantamatto/fantamatto/internal/domain/repository"
)

// AdminUseCase gates the moderation surface behind a fixed configured secret
// and exposes the administrative escape hatches.
type AdminUseCase struct {
	secret string
	users  repository.UserRepository
	stats  repository.StatsRepository
}

// NewAdminUseCase constructs AdminUseCase.
func NewAdminUseCase(secret string, users repository.UserRepository, stats repository.StatsRepository) *AdminUseCase {
	return &AdminUseCase{secret: secret, users: users, stats: stats}
}

// VerifyPassword checks the supplied secret against the configured one.
func (u *AdminUseCase) VerifyPassword(password string) error {
	if subtle.ConstantTimeCompare([]byte(password), []byte(u.secret)) != 1 {
		return domainErrors.ErrUnauthorized
	}
	return nil
}

// Stats collects the dashboard counters.
func (u *AdminUseCase) Stats(ctx context.Context) (*model.Stats, error) {
	return u.stats.Collect(ctx)
}

// ResetAllPoints zeroes every user's running total without touching any
// submission, deliberately breaking the ledger invariant until submissions
// are re-evaluated.
func (u *AdminUseCase) ResetAllPoints(ctx context.Context) error {
	return u.users.ResetAllPoints(ctx)
}
