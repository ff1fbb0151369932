package test

import (
	"context"
	"sync"

	"github.com/fantamatto/fantamatto/internal/domain/model"
)

// UserFacadeStub provides controllable behaviour for user endpoints.
type UserFacadeStub struct {
	RegisterFn     func(context.Context, string, string) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseFn        func(string) (string, error)
	UserByIDFn     func(context.Context, string) (*model.User, error)
	LeaderboardFn  func(context.Context) ([]model.User, error)
}

// Register returns token for successful registration scenarios.
func (s UserFacadeStub) Register(ctx context.Context, username, password string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, username, password)
	}
	return &model.User{ID: "user-1", Username: username, IsActive: true}, "token", nil
}

// Authenticate returns token for successful authentication scenarios.
func (s UserFacadeStub) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, username, password)
	}
	return &model.User{ID: "user-1", Username: username, IsActive: true}, "token", nil
}

// ParseToken returns stored identifier for authenticated user.
func (s UserFacadeStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return "user-1", nil
}

// UserByID returns configured profile or a default active user.
func (s UserFacadeStub) UserByID(ctx context.Context, id string) (*model.User, error) {
	if s.UserByIDFn != nil {
		return s.UserByIDFn(ctx, id)
	}
	return &model.User{ID: id, Username: "ale", IsActive: true}, nil
}

// Leaderboard returns predefined standings.
func (s UserFacadeStub) Leaderboard(ctx context.Context) ([]model.User, error) {
	if s.LeaderboardFn != nil {
		return s.LeaderboardFn(ctx)
	}
	return []model.User{{ID: "user-1", Username: "ale", TotalPoints: 50, IsActive: true}}, nil
}

// LedgerFacadeStub simulates matto submission operations.
type LedgerFacadeStub struct {
	SubmitFn        func(context.Context, model.Submission) (*model.Matto, error)
	ApprovedMattiFn func(context.Context) ([]model.Matto, error)
	UserMattiFn     func(context.Context, string) ([]model.Matto, error)

	mu          sync.Mutex
	Submissions []model.Submission
}

// Submit records the submission and returns a matto echoing it.
func (s *LedgerFacadeStub) Submit(ctx context.Context, sub model.Submission) (*model.Matto, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, sub)
	}
	s.mu.Lock()
	s.Submissions = append(s.Submissions, sub)
	s.mu.Unlock()
	return &model.Matto{
		ID:         "matto-1",
		UserID:     sub.UserID,
		Username:   sub.Username,
		Nickname:   sub.Nickname,
		Rarity:     sub.Rarity,
		Points:     model.PointsForRarity(sub.Rarity),
		IsApproved: true,
	}, nil
}

// ApprovedMatti returns the configured public feed.
func (s *LedgerFacadeStub) ApprovedMatti(ctx context.Context) ([]model.Matto, error) {
	if s.ApprovedMattiFn != nil {
		return s.ApprovedMattiFn(ctx)
	}
	return []model.Matto{{ID: "matto-1", Nickname: "il matto", IsApproved: true}}, nil
}

// UserMatti returns matti for the given user.
func (s *LedgerFacadeStub) UserMatti(ctx context.Context, userID string) ([]model.Matto, error) {
	if s.UserMattiFn != nil {
		return s.UserMattiFn(ctx, userID)
	}
	return []model.Matto{{ID: "matto-1", UserID: userID, IsApproved: true}}, nil
}

// AdminFacadeStub simulates the moderation surface.
type AdminFacadeStub struct {
	VerifyFn      func(string) error
	StatsFn       func(context.Context) (*model.Stats, error)
	UsersFn       func(context.Context) ([]model.User, error)
	CreateUserFn  func(context.Context, string, string) (*model.User, error)
	UpdateUserFn  func(context.Context, string, model.UserChanges) (*model.User, error)
	DeleteUserFn  func(context.Context, string) error
	AllMattiFn    func(context.Context) ([]model.Matto, error)
	UpdateMattoFn func(context.Context, string, model.MattoChanges) (*model.Matto, error)
	DeleteMattoFn func(context.Context, string) error
	ResetFn       func(context.Context) error

	ResetCalls int
}

// VerifyAdminPassword accepts every password unless overridden.
func (s *AdminFacadeStub) VerifyAdminPassword(password string) error {
	if s.VerifyFn != nil {
		return s.VerifyFn(password)
	}
	return nil
}

// Stats returns preconfigured aggregate counters.
func (s *AdminFacadeStub) Stats(ctx context.Context) (*model.Stats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx)
	}
	return &model.Stats{TotalUsers: 1, TotalMatti: 1, TotalPoints: 50}, nil
}

// Users returns the full directory listing.
func (s *AdminFacadeStub) Users(ctx context.Context) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return []model.User{{ID: "user-1", Username: "ale", IsActive: true}}, nil
}

// CreateUser returns a user echoing the supplied username.
func (s *AdminFacadeStub) CreateUser(ctx context.Context, username, password string) (*model.User, error) {
	if s.CreateUserFn != nil {
		return s.CreateUserFn(ctx, username, password)
	}
	return &model.User{ID: "user-1", Username: username, IsActive: true}, nil
}

// UpdateUser applies overrides or returns a user with the given id.
func (s *AdminFacadeStub) UpdateUser(ctx context.Context, id string, changes model.UserChanges) (*model.User, error) {
	if s.UpdateUserFn != nil {
		return s.UpdateUserFn(ctx, id, changes)
	}
	return &model.User{ID: id, Username: "ale", IsActive: true}, nil
}

// DeleteUser executes configured handler.
func (s *AdminFacadeStub) DeleteUser(ctx context.Context, id string) error {
	if s.DeleteUserFn != nil {
		return s.DeleteUserFn(ctx, id)
	}
	return nil
}

// AllMatti returns the moderation listing.
func (s *AdminFacadeStub) AllMatti(ctx context.Context) ([]model.Matto, error) {
	if s.AllMattiFn != nil {
		return s.AllMattiFn(ctx)
	}
	return []model.Matto{{ID: "matto-1", Nickname: "il matto"}}, nil
}

// UpdateMatto applies overrides or returns a matto with the given id.
func (s *AdminFacadeStub) UpdateMatto(ctx context.Context, id string, changes model.MattoChanges) (*model.Matto, error) {
	if s.UpdateMattoFn != nil {
		return s.UpdateMattoFn(ctx, id, changes)
	}
	return &model.Matto{ID: id, Nickname: "il matto", IsApproved: true}, nil
}

// DeleteMatto executes configured handler.
func (s *AdminFacadeStub) DeleteMatto(ctx context.Context, id string) error {
	if s.DeleteMattoFn != nil {
		return s.DeleteMattoFn(ctx, id)
	}
	return nil
}

// ResetPoints counts invocations for assertions.
func (s *AdminFacadeStub) ResetPoints(ctx context.Context) error {
	if s.ResetFn != nil {
		return s.ResetFn(ctx)
	}
	s.ResetCalls++
	return nil
}

// FantamattoFacadeStub aggregates facade dependencies for HTTP layer tests.
type FantamattoFacadeStub struct {
	UserFacadeStub
	LedgerFacadeStub
	AdminFacadeStub
}
