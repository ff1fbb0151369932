package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/fantamatto/fantamatto/internal/domain/errors"
	"github.com/fantamatto/fantamatto/internal/domain/model"
	"github.com/fantamatto/fantamatto/internal/domain/repository"
	pkgAuth "github.com/fantamatto/fantamatto/internal/pkg/auth"
)

// UserUseCase handles the player directory: registration, login, admin
// mutation and the cascade delete of a player with their submissions.
type UserUseCase struct {
	users  repository.UserRepository
	matti  repository.MattoRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository, matti repository.MattoRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *UserUseCase {
	return &UserUseCase{users: users, matti: matti, hasher: hasher, tokens: strategy}
}

// Register creates a new user with username/password and returns a session token.
func (u *UserUseCase) Register(ctx context.Context, username, password string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, username, hash)
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns a session token.
// Inactive accounts are rejected even with the right password.
func (u *UserUseCase) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !usr.IsActive {
		return nil, "", domainErrors.ErrInactiveAccount
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts the user ID from provided token.
func (u *UserUseCase) ParseToken(token string) (string, error) {
	if token == "" {
		return "", pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches a user by identifier.
func (u *UserUseCase) GetByID(ctx context.Context, id string) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// Leaderboard returns active users ordered by running total, highest first.
func (u *UserUseCase) Leaderboard(ctx context.Context) ([]model.User, error) {
	return u.users.Leaderboard(ctx)
}

// ListAll returns every user regardless of active flag, newest first.
func (u *UserUseCase) ListAll(ctx context.Context) ([]model.User, error) {
	return u.users.ListAll(ctx)
}

// Update applies a partial mutation to a user, hashing the password when one
// is supplied.
func (u *UserUseCase) Update(ctx context.Context, id string, changes model.UserChanges) (*model.User, error) {
	update := model.UserUpdate{
		Username:    changes.Username,
		TotalPoints: changes.TotalPoints,
		IsActive:    changes.IsActive,
	}
	if changes.Password != nil {
		hash, err := u.hasher.Hash(*changes.Password)
		if err != nil {
			return nil, err
		}
		update.PasswordHash = &hash
	}
	return u.users.Update(ctx, id, update)
}

// Delete removes a user together with all of their submissions. The matti go
// first and without compensating debits since the owner's total disappears
// with the user row.
func (u *UserUseCase) Delete(ctx context.Context, id string) error {
	if err := u.matti.DeleteByUser(ctx, id); err != nil {
		return err
	}
	return u.users.Delete(ctx, id)
}
