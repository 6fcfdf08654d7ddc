// Package persistence selects the storage driver and exposes its repositories to the fx graph.
package persistence

import (
	"log/slog"

	"affiliate/config"
	"affiliate/internal/domain/repository"
	"affiliate/internal/infra/persistence/mongodb"
	"affiliate/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the result set shared by every driver.
type Repositories struct {
	fx.Out

	ProductRepo repository.ProductRepository
	ClickRepo   repository.ClickRepository
	ProfileRepo repository.ProfileRepository
	TxManager   repository.TransactionManager
}

// Provide opens the configured store and builds its repositories.
func Provide(params Params) (Repositories, error) {
	switch params.Config.Storage.Driver {
	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			ProductRepo: postgres.NewProductRepository(db),
			ClickRepo:   postgres.NewClickRepository(db),
			ProfileRepo: postgres.NewProfileRepository(db),
			TxManager:   postgres.NewTransactionManager(db),
		}, nil

	case config.StorageDriverMongo, "":
		db, err := mongodb.New(mongodb.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			ProductRepo: mongodb.NewProductRepository(db),
			ClickRepo:   mongodb.NewClickRepository(db),
			ProfileRepo: mongodb.NewProfileRepository(db),
			TxManager:   mongodb.NewTransactionManager(db, params.Config.Mongo.Transactions),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown storage driver: %s", params.Config.Storage.Driver)
	}
}
