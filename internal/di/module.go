package di

import (
	"go.uber.org/fx"

	"github.com/sureshift/backend/internal/adapter/mailer"
	"github.com/sureshift/backend/internal/app"
	"github.com/sureshift/backend/internal/config"
	"github.com/sureshift/backend/internal/logger"
	"github.com/sureshift/backend/internal/pkg/auth"
	"github.com/sureshift/backend/internal/pkg/orderid"
	"github.com/sureshift/backend/internal/server/http/handlers"
	"github.com/sureshift/backend/internal/server/http/router"
	"github.com/sureshift/backend/internal/storage/postgres"
	"github.com/sureshift/backend/internal/usecase"
	"github.com/sureshift/backend/internal/worker"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		orderid.Module,
		postgres.Module,
		mailer.Module,
		usecase.Module,
		fx.Provide(func(d *worker.NotificationDispatcher) app.Notifier { return d }),
		fx.Provide(func(f *app.PickupFacade) handlers.PickupFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
