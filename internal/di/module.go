package di

import (
	"github.com/fantamatto/fantamatto/internal/app"
	"github.com/fantamatto/fantamatto/internal/config"
	"github.com/fantamatto/fantamatto/internal/logger"
	"github.com/fantamatto/fantamatto/internal/pkg/auth"
	"github.com/fantamatto/fantamatto/internal/server/http/handlers"
	"github.com/fantamatto/fantamatto/internal/server/http/router"
	"github.com/fantamatto/fantamatto/internal/storage/postgres"
	"github.com/fantamatto/fantamatto/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.FantamattoFacade) handlers.FantamattoFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
