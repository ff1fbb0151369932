package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/fantamatto/fantamatto/internal/domain/errors"
	"github.com/fantamatto/fantamatto/internal/domain/model"
	"github.com/fantamatto/fantamatto/internal/domain/repository"
)

// LedgerUseCase owns the points ledger: every submission mutation issues a
// compensating adjustment against the owner's running total so the total
// stays equal to the sum of the owner's counted submissions. The submission
// write and the adjustment are two sequential storage calls, not one
// transaction; a failure between them leaves the total stale.
type LedgerUseCase struct {
	users repository.UserRepository
	matti repository.MattoRepository
}

// NewLedgerUseCase constructs LedgerUseCase.
func NewLedgerUseCase(users repository.UserRepository, matti repository.MattoRepository) *LedgerUseCase {
	return &LedgerUseCase{users: users, matti: matti}
}

// Submit stores a new matto and credits the owner with the points its rarity
// resolves to. The owner must exist and be active.
func (u *LedgerUseCase) Submit(ctx context.Context, sub model.Submission) (*model.Matto, error) {
	owner, err := u.users.GetByID(ctx, sub.UserID)
	if err != nil {
		return nil, err
	}
	if !owner.IsActive {
		return nil, domainErrors.ErrNotFound
	}

	points := model.PointsForRarity(sub.Rarity)
	created, err := u.matti.Create(ctx, &model.Matto{
		UserID:      sub.UserID,
		Username:    sub.Username,
		PhotoData:   sub.PhotoData,
		Nickname:    sub.Nickname,
		Description: sub.Description,
		Rarity:      sub.Rarity,
		Points:      points,
		IsApproved:  true,
	})
	if err != nil {
		return nil, err
	}

	if err := u.users.AdjustPoints(ctx, sub.UserID, points); err != nil {
		return nil, err
	}

	return created, nil
}

// GetByID fetches a matto by identifier.
func (u *LedgerUseCase) GetByID(ctx context.Context, id string) (*model.Matto, error) {
	return u.matti.GetByID(ctx, id)
}

// ListApproved returns publicly visible matti, newest first.
func (u *LedgerUseCase) ListApproved(ctx context.Context) ([]model.Matto, error) {
	return u.matti.ListApproved(ctx)
}

// ListApprovedByUser returns one user's publicly visible matti, newest first.
func (u *LedgerUseCase) ListApprovedByUser(ctx context.Context, userID string) ([]model.Matto, error) {
	return u.matti.ListApprovedByUser(ctx, userID)
}

// ListAll returns every matto including unapproved ones, newest first.
func (u *LedgerUseCase) ListAll(ctx context.Context) ([]model.Matto, error) {
	return u.matti.ListAll(ctx)
}

// Adjust applies a partial mutation to a matto. When rarity is part of the
// change set the stored point value is recomputed and the difference is
// applied to the owner's total; nickname, description and approval changes
// never touch the ledger.
func (u *LedgerUseCase) Adjust(ctx context.Context, id string, changes model.MattoChanges) (*model.Matto, error) {
	current, err := u.matti.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	update := model.MattoUpdate{
		Nickname:    changes.Nickname,
		Description: changes.Description,
		Rarity:      changes.Rarity,
		IsApproved:  changes.IsApproved,
	}
	if changes.Rarity != nil {
		newPoints := model.PointsForRarity(*changes.Rarity)
		update.Points = &newPoints
		if diff := newPoints - current.Points; diff != 0 {
			if err := u.users.AdjustPoints(ctx, current.UserID, diff); err != nil {
				return nil, err
			}
		}
	}

	return u.matti.Update(ctx, id, update)
}

// Remove deletes a matto and debits its stored point value from the owner.
// A missing owner makes the debit a silent no-op; the submission is gone
// either way.
func (u *LedgerUseCase) Remove(ctx context.Context, id string) error {
	current, err := u.matti.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := u.matti.Delete(ctx, id); err != nil {
		return err
	}

	if err := u.users.AdjustPoints(ctx, current.UserID, -current.Points); err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
		return err
	}
	return nil
}
