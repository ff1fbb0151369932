package test

import (
	"context"
	"fmt"
	"sort"
	"time"

	domainErrors "github.com/fantamatto/fantamatto/internal/domain/errors"
	"github.com/fantamatto/fantamatto/internal/domain/model"
)

// PointsAdjustment records a single AdjustPoints invocation.
type PointsAdjustment struct {
	UserID string
	Delta  int64
}

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByUsername map[string]*model.User
	ByID       map[string]*model.User
	Next       int
	Err        error

	AdjustErr   error
	Adjustments []PointsAdjustment
	ResetCalls  int
	Deleted     []string
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByUsername: make(map[string]*model.User),
		ByID:       make(map[string]*model.User),
		Next:       1,
	}
}

// Add seeds a user directly into the stub.
func (s *UserRepositoryStub) Add(user *model.User) {
	s.ByUsername[user.Username] = user
	s.ByID[user.ID] = user
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, username, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByUsername[username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user := &model.User{
		ID:           fmt.Sprintf("user-%d", s.Next),
		Username:     username,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	s.Next++
	s.Add(user)
	return user, nil
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByUsername fetches user by username or returns not found.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByUsername[username]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Leaderboard returns active users sorted by total points descending.
func (s *UserRepositoryStub) Leaderboard(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.User
	for _, u := range s.ByID {
		if u.IsActive {
			result = append(result, *u)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].TotalPoints > result[j].TotalPoints })
	return result, nil
}

// ListAll returns every stored user.
func (s *UserRepositoryStub) ListAll(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.User
	for _, u := range s.ByID {
		result = append(result, *u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Update applies the partial mutation to a stored user.
func (s *UserRepositoryStub) Update(ctx context.Context, id string, update model.UserUpdate) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if update.Username != nil {
		delete(s.ByUsername, user.Username)
		user.Username = *update.Username
		s.ByUsername[user.Username] = user
	}
	if update.PasswordHash != nil {
		user.PasswordHash = *update.PasswordHash
	}
	if update.TotalPoints != nil {
		user.TotalPoints = *update.TotalPoints
	}
	if update.IsActive != nil {
		user.IsActive = *update.IsActive
	}
	return user, nil
}

// Delete removes the user and records the call.
func (s *UserRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByID, id)
	delete(s.ByUsername, user.Username)
	s.Deleted = append(s.Deleted, id)
	return nil
}

// AdjustPoints applies delta to the stored total and records the call.
func (s *UserRepositoryStub) AdjustPoints(ctx context.Context, id string, delta int64) error {
	if s.AdjustErr != nil {
		return s.AdjustErr
	}
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	user.TotalPoints += delta
	s.Adjustments = append(s.Adjustments, PointsAdjustment{UserID: id, Delta: delta})
	return nil
}

// ResetAllPoints zeroes every stored total.
func (s *UserRepositoryStub) ResetAllPoints(ctx context.Context) error {
	if s.Err != nil {
		return s.Err
	}
	for _, u := range s.ByID {
		u.TotalPoints = 0
	}
	s.ResetCalls++
	return nil
}

// MattoRepositoryStub stores matti in-memory for tests.
type MattoRepositoryStub struct {
	Items map[string]*model.Matto
	Next  int
	Err   error

	CreateFn      func(context.Context, *model.Matto) (*model.Matto, error)
	UpdateFn      func(context.Context, string, model.MattoUpdate) (*model.Matto, error)
	DeletedByUser []string
}

// NewMattoRepositoryStub constructs stub repository with initialized map.
func NewMattoRepositoryStub() *MattoRepositoryStub {
	return &MattoRepositoryStub{Items: make(map[string]*model.Matto), Next: 1}
}

// Add seeds a matto directly into the stub.
func (s *MattoRepositoryStub) Add(matto *model.Matto) {
	s.Items[matto.ID] = matto
}

// Create stores the matto with a generated identifier.
func (s *MattoRepositoryStub) Create(ctx context.Context, matto *model.Matto) (*model.Matto, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, matto)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	created := *matto
	created.ID = fmt.Sprintf("matto-%d", s.Next)
	created.CreatedAt = time.Now()
	s.Next++
	s.Items[created.ID] = &created
	return &created, nil
}

// GetByID fetches matto by identifier or returns not found.
func (s *MattoRepositoryStub) GetByID(ctx context.Context, id string) (*model.Matto, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if matto, ok := s.Items[id]; ok {
		copied := *matto
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListApproved returns approved matti.
func (s *MattoRepositoryStub) ListApproved(ctx context.Context) ([]model.Matto, error) {
	return s.list(func(m *model.Matto) bool { return m.IsApproved })
}

// ListApprovedByUser returns one user's approved matti.
func (s *MattoRepositoryStub) ListApprovedByUser(ctx context.Context, userID string) ([]model.Matto, error) {
	return s.list(func(m *model.Matto) bool { return m.IsApproved && m.UserID == userID })
}

// ListAll returns every stored matto.
func (s *MattoRepositoryStub) ListAll(ctx context.Context) ([]model.Matto, error) {
	return s.list(func(*model.Matto) bool { return true })
}

func (s *MattoRepositoryStub) list(keep func(*model.Matto) bool) ([]model.Matto, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Matto
	for _, m := range s.Items {
		if keep(m) {
			result = append(result, *m)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Update applies the partial mutation to a stored matto.
func (s *MattoRepositoryStub) Update(ctx context.Context, id string, update model.MattoUpdate) (*model.Matto, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, update)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	matto, ok := s.Items[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if update.Nickname != nil {
		matto.Nickname = *update.Nickname
	}
	if update.Description != nil {
		matto.Description = *update.Description
	}
	if update.Rarity != nil {
		matto.Rarity = *update.Rarity
	}
	if update.IsApproved != nil {
		matto.IsApproved = *update.IsApproved
	}
	if update.Points != nil {
		matto.Points = *update.Points
	}
	copied := *matto
	return &copied, nil
}

// Delete removes the matto.
func (s *MattoRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Items[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Items, id)
	return nil
}

// DeleteByUser removes every matto owned by the user and records the call.
func (s *MattoRepositoryStub) DeleteByUser(ctx context.Context, userID string) error {
	if s.Err != nil {
		return s.Err
	}
	for id, m := range s.Items {
		if m.UserID == userID {
			delete(s.Items, id)
		}
	}
	s.DeletedByUser = append(s.DeletedByUser, userID)
	return nil
}

// StatsRepositoryStub returns canned dashboard counters.
type StatsRepositoryStub struct {
	Stats     *model.Stats
	Err       error
	CollectFn func(context.Context) (*model.Stats, error)
}

// Collect returns configured stats.
func (s *StatsRepositoryStub) Collect(ctx context.Context) (*model.Stats, error) {
	if s.CollectFn != nil {
		return s.CollectFn(ctx)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Stats != nil {
		return s.Stats, nil
	}
	return &model.Stats{}, nil
}
