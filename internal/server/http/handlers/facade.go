package handlers

import (
	"context"

	"github.com/fantamatto/fantamatto/internal/domain/model"
)

// UserFacade describes the directory capabilities required by handlers.
type UserFacade interface {
	Register(ctx context.Context, username, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, string, error)
	ParseToken(token string) (string, error)
	UserByID(ctx context.Context, id string) (*model.User, error)
	Leaderboard(ctx context.Context) ([]model.User, error)
}

// LedgerFacade encapsulates submission operations exposed via HTTP.
type LedgerFacade interface {
	Submit(ctx context.Context, sub model.Submission) (*model.Matto, error)
	ApprovedMatti(ctx context.Context) ([]model.Matto, error)
	UserMatti(ctx context.Context, userID string) ([]model.Matto, error)
}

// AdminFacade provides the moderation surface.
type AdminFacade interface {
	VerifyAdminPassword(password string) error
	Stats(ctx context.Context) (*model.Stats, error)
	Users(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, username, password string) (*model.User, error)
	UpdateUser(ctx context.Context, id string, changes model.UserChanges) (*model.User, error)
	DeleteUser(ctx context.Context, id string) error
	AllMatti(ctx context.Context) ([]model.Matto, error)
	UpdateMatto(ctx context.Context, id string, changes model.MattoChanges) (*model.Matto, error)
	DeleteMatto(ctx context.Context, id string) error
	ResetPoints(ctx context.Context) error
}

// FantamattoFacade aggregates the full set of operations used across handlers.
type FantamattoFacade interface {
	UserFacade
	LedgerFacade
	AdminFacade
}
