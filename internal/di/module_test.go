package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/fantamatto/fantamatto/internal/app"
	"github.com/fantamatto/fantamatto/internal/config"
	"github.com/fantamatto/fantamatto/internal/domain/repository"
	"github.com/fantamatto/fantamatto/internal/storage/postgres"
	"github.com/fantamatto/fantamatto/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		AdminPassword:   "supersegreta",
		JWTSecret:       "secret",
		TokenTTL:        time.Minute,
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	mattoRepo := test.NewMattoRepositoryStub()
	statsRepo := &test.StatsRepositoryStub{}

	var facade *app.FantamattoFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.MattoRepository(mattoRepo)),
			fx.Replace(repository.StatsRepository(statsRepo)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected fantamatto facade instance")
	}
}
