package storage

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/polkiloo/canteen/internal/config"
	"github.com/polkiloo/canteen/internal/domain/repository"
	"github.com/polkiloo/canteen/internal/storage/mongo"
	"github.com/polkiloo/canteen/internal/storage/postgres"
)

// Module wires the configured storage backend and repository adapters.
var Module = fx.Options(
	fx.Provide(newFactory),
	fx.Provide(
		func(f repository.Factory) repository.UserRepository { return f.Users() },
		func(f repository.Factory) repository.MenuRepository { return f.Menu() },
		func(f repository.Factory) repository.OrderRepository { return f.Orders() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *zap.Logger
}

var (
	openPostgres = func(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.Factory, error) {
		s, err := postgres.New(ctx, cfg.DatabaseURI, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	openMongo = func(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.Factory, error) {
		s, err := mongo.New(ctx, cfg.MongoURI, cfg.MongoDatabase, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
)

func newFactory(p storageParams) (repository.Factory, error) {
	logger := p.Logger.Named("storage")
	switch p.Config.StorageDriver {
	case config.DriverPostgres:
		return openPostgres(p.Ctx, p.Config, logger.With(zap.String("driver", config.DriverPostgres)))
	case config.DriverMongo, "":
		return openMongo(p.Ctx, p.Config, logger.With(zap.String("driver", config.DriverMongo)))
	}
	return nil, fmt.Errorf("unknown storage driver %q", p.Config.StorageDriver)
}

func registerLifecycle(lc fx.Lifecycle, factory repository.Factory) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return factory.Close(ctx)
		},
	})
}
