package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/toymix/internal/app"
	"github.com/polkiloo/toymix/internal/config"
	"github.com/polkiloo/toymix/internal/logger"
	"github.com/polkiloo/toymix/internal/pkg/auth"
	"github.com/polkiloo/toymix/internal/server/http/handlers"
	"github.com/polkiloo/toymix/internal/server/http/router"
	"github.com/polkiloo/toymix/internal/storage/postgres"
	"github.com/polkiloo/toymix/internal/usecase"
)

// Module assembles the full application graph. Extra options are appended last
// so callers can override providers.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		fx.Provide(func(f *app.StoreFacade) handlers.StoreFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
