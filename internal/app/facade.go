package app

import (
	"context"

	"github.com/fantamatto/fantamatto/internal/domain/model"
	"github.com/fantamatto/fantamatto/internal/usecase"
)

// FantamattoFacade aggregates the use cases behind the HTTP surface.
type FantamattoFacade struct {
	users  *usecase.UserUseCase
	ledger *usecase.LedgerUseCase
	admin  *usecase.AdminUseCase
}

// NewFantamattoFacade constructs FantamattoFacade.
func NewFantamattoFacade(users *usecase.UserUseCase, ledger *usecase.LedgerUseCase, admin *usecase.AdminUseCase) *FantamattoFacade {
	return &FantamattoFacade{users: users, ledger: ledger, admin: admin}
}

func (f *FantamattoFacade) Register(ctx context.Context, username, password string) (*model.User, string, error) {
	return f.users.Register(ctx, username, password)
}

func (f *FantamattoFacade) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	return f.users.Authenticate(ctx, username, password)
}

func (f *FantamattoFacade) ParseToken(token string) (string, error) {
	return f.users.ParseToken(token)
}

func (f *FantamattoFacade) UserByID(ctx context.Context, id string) (*model.User, error) {
	return f.users.GetByID(ctx, id)
}

func (f *FantamattoFacade) Leaderboard(ctx context.Context) ([]model.User, error) {
	return f.users.Leaderboard(ctx)
}

func (f *FantamattoFacade) Submit(ctx context.Context, sub model.Submission) (*model.Matto, error) {
	return f.ledger.Submit(ctx, sub)
}

func (f *FantamattoFacade) ApprovedMatti(ctx context.Context) ([]model.Matto, error) {
	return f.ledger.ListApproved(ctx)
}

func (f *FantamattoFacade) UserMatti(ctx context.Context, userID string) ([]model.Matto, error) {
	return f.ledger.ListApprovedByUser(ctx, userID)
}

func (f *FantamattoFacade) VerifyAdminPassword(password string) error {
	return f.admin.VerifyPassword(password)
}

func (f *FantamattoFacade) Stats(ctx context.Context) (*model.Stats, error) {
	return f.admin.Stats(ctx)
}

func (f *FantamattoFacade) Users(ctx context.Context) ([]model.User, error) {
	return f.users.ListAll(ctx)
}

func (f *FantamattoFacade) CreateUser(ctx context.Context, username, password string) (*model.User, error) {
	user, _, err := f.users.Register(ctx, username, password)
	return user, err
}

func (f *FantamattoFacade) UpdateUser(ctx context.Context, id string, changes model.UserChanges) (*model.User, error) {
	return f.users.Update(ctx, id, changes)
}

func (f *FantamattoFacade) DeleteUser(ctx context.Context, id string) error {
	return f.users.Delete(ctx, id)
}

func (f *FantamattoFacade) AllMatti(ctx context.Context) ([]model.Matto, error) {
	return f.ledger.ListAll(ctx)
}

func (f *FantamattoFacade) UpdateMatto(ctx context.Context, id string, changes model.MattoChanges) (*model.Matto, error) {
	return f.ledger.Adjust(ctx, id, changes)
}

func (f *FantamattoFacade) DeleteMatto(ctx context.Context, id string) error {
	return f.ledger.Remove(ctx, id)
}

func (f *FantamattoFacade) ResetPoints(ctx context.Context) error {
	return f.admin.ResetAllPoints(ctx)
}
