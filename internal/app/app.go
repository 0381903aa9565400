package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/polkiloo/canteen/internal/config"
	"github.com/polkiloo/canteen/internal/server/http/handlers"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewCanteenFacade,
		func(f *CanteenFacade) handlers.CanteenFacade { return f },
		newHTTPServer,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

// MenuSeeder fills an empty catalog at startup.
type MenuSeeder interface {
	SeedMenu(ctx context.Context) (int, error)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *zap.Logger
	Server     *http.Server
	Seeder     *CanteenFacade
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	var seeder MenuSeeder
	if p.Seeder != nil {
		seeder = p.Seeder
	}
	registerServer(p.Lifecycle, p.Shutdowner, p.Logger, p.Server, seeder, p.Config)
}

func registerServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, logger *zap.Logger, server *http.Server, seeder MenuSeeder, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.SeedMenu && seeder != nil {
				n, err := seeder.SeedMenu(ctx)
				if err != nil {
					logger.Warn("menu seeding failed", zap.Error(err))
				} else if n > 0 {
					logger.Info("sample menu inserted", zap.Int("items", n))
				}
			}

			logger.Info("starting canteen api", zap.String("addr", server.Addr), zap.String("storage", cfg.StorageDriver))
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("http server terminated", zap.Error(err))
					_ = shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, cfg.ShutdownTimeout)
			}
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			logger.Info("canteen api stopped")
			return nil
		},
	})
}
