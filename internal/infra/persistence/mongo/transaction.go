package mongo

import (
	"context"

	"marvel/internal/domain/repository"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// transactionManager runs fn without a MongoDB session. A user and its
// favorites live in one document, so every write is already atomic.
type transactionManager struct {
	repo repository.UserRepository
}

// NewTransactionManager returns a TransactionManager over the users collection.
func NewTransactionManager(coll *mongo.Collection) repository.TransactionManager {
	return &transactionManager{repo: NewUserRepository(coll)}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(tm)
}

func (tm *transactionManager) NewUserRepository() repository.UserRepository {
	return tm.repo
}
