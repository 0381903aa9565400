package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/canteen/internal/adapter/gateway"
	"github.com/polkiloo/canteen/internal/app"
	"github.com/polkiloo/canteen/internal/cache"
	"github.com/polkiloo/canteen/internal/config"
	"github.com/polkiloo/canteen/internal/logger"
	"github.com/polkiloo/canteen/internal/pkg/auth"
	"github.com/polkiloo/canteen/internal/server/http/router"
	"github.com/polkiloo/canteen/internal/storage"
	"github.com/polkiloo/canteen/internal/usecase"
)

// Module assembles the application graph. Extra options are appended last so
// callers can replace any provided value.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		storage.Module,
		cache.Module,
		gateway.Module,
		usecase.Module,
		fx.Provide(func(v gateway.Verifier) usecase.PaymentVerifier { return v }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
