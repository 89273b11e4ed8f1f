package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/sureshift/backend/internal/config"
	"github.com/sureshift/backend/internal/domain/repository"
)

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.AdminRepository { return s.Admins() },
		func(s *Storage) repository.OrderRepository { return s.Orders() },
		func(s *Storage) repository.StatusRepository { return s.Statuses() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURL, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
