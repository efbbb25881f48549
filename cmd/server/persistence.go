package main

import (
	"log/slog"

	"marvel/config"
	"marvel/internal/domain/repository"
	"marvel/internal/errors"
	"marvel/internal/infra/persistence/memory"
	"marvel/internal/infra/persistence/mongo"
	"marvel/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

type persistenceParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type persistenceResult struct {
	fx.Out

	UserRepo  repository.UserRepository
	TxManager repository.TransactionManager
}

// newPersistence opens the credential store selected by store.driver.
func newPersistence(params persistenceParams) (persistenceResult, error) {
	switch params.Config.Store.Driver {
	case config.StoreDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return persistenceResult{}, err
		}

		return persistenceResult{
			UserRepo:  postgres.NewUserRepository(db),
			TxManager: postgres.NewTransactionManager(db),
		}, nil

	case config.StoreDriverMongo:
		coll, err := mongo.New(mongo.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return persistenceResult{}, err
		}

		return persistenceResult{
			UserRepo:  mongo.NewUserRepository(coll),
			TxManager: mongo.NewTransactionManager(coll),
		}, nil

	case config.StoreDriverMemory:
		params.Logger.Warn("Using the in-memory store, data is lost on restart")
		store := memory.NewStore()

		return persistenceResult{
			UserRepo:  memory.NewUserRepository(store),
			TxManager: memory.NewTransactionManager(store),
		}, nil

	default:
		return persistenceResult{}, errors.Errorf("unknown store driver %q", params.Config.Store.Driver)
	}
}
