package memory

import (
	"context"

	"marvel/internal/domain/repository"
)

// transactionManager has no rollback; every store write is atomic on its own
// and favorites writes are guarded by the version check.
type transactionManager struct {
	store *Store
}

// NewTransactionManager returns a TransactionManager over store.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(tm)
}

func (tm *transactionManager) NewUserRepository() repository.UserRepository {
	return tm.store
}
