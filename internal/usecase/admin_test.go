package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/fantamatto/fantamatto/internal/domain/errors"
	"github.com/fantamatto/fantamatto/internal/domain/model"
	testhelpers "github.com/fantamatto/fantamatto/internal/test"
)

func TestAdminUseCaseVerifyPassword(t *testing.T) {
	uc := NewAdminUseCase("supersegreta", testhelpers.NewUserRepositoryStub(), &testhelpers.StatsRepositoryStub{})

	if err := uc.VerifyPassword("supersegreta"); err != nil {
		t.Fatalf("expected matching password to pass: %v", err)
	}
	if err := uc.VerifyPassword("wrong"); !errors.Is(err, domainErrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := uc.VerifyPassword(""); !errors.Is(err, domainErrors.ErrUnauthorized) {
		t.Fatalf("expected empty password to fail, got %v", err)
	}
}

func TestAdminUseCaseStats(t *testing.T) {
	stats := &testhelpers.StatsRepositoryStub{Stats: &model.Stats{TotalUsers: 3, TotalMatti: 7, TotalPoints: 240, PendingMatti: 2}}
	uc := NewAdminUseCase("secret", testhelpers.NewUserRepositoryStub(), stats)

	got, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats returned error: %v", err)
	}
	if got.TotalUsers != 3 || got.TotalMatti != 7 || got.TotalPoints != 240 || got.PendingMatti != 2 {
		t.Fatalf("unexpected counters: %+v", got)
	}
}

func TestAdminUseCaseResetAllPoints(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	users.Add(&model.User{ID: "user-1", Username: "ale", TotalPoints: 150, IsActive: true})
	users.Add(&model.User{ID: "user-2", Username: "giu", TotalPoints: 25, IsActive: true})
	uc := NewAdminUseCase("secret", users, &testhelpers.StatsRepositoryStub{})

	if err := uc.ResetAllPoints(context.Background()); err != nil {
		t.Fatalf("reset returned error: %v", err)
	}
	if users.ResetCalls != 1 {
		t.Fatalf("expected one reset call, got %d", users.ResetCalls)
	}
	for _, u := range users.ByID {
		if u.TotalPoints != 0 {
			t.Fatalf("expected zeroed total for %s, got %d", u.Username, u.TotalPoints)
		}
	}
}

func TestAdminUseCaseResetPropagatesError(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	users.Err = errors.New("storage down")
	uc := NewAdminUseCase("secret", users, &testhelpers.StatsRepositoryStub{})

	if err := uc.ResetAllPoints(context.Background()); err == nil {
		t.Fatalf("expected storage error to propagate")
	}
}
