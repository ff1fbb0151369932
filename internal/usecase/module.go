package usecase

import (
	"go.uber.org/fx"

	"github.com/fantamatto/fantamatto/internal/config"
	"github.com/fantamatto/fantamatto/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewUserUseCase,
	NewLedgerUseCase,
	func(cfg *config.Config, users repository.UserRepository, stats repository.StatsRepository) *AdminUseCase {
		return NewAdminUseCase(cfg.AdminPassword, users, stats)
	},
)
