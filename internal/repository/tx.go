package repository

import (
	"context"

	"gorm.io/gorm"

	"estore/internal/errors"
)

// TxManager runs a function with transaction-scoped item and issue
// repositories. The function's error aborts the transaction; the quantity
// decrement and ledger insert commit together or not at all.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context, items ItemRepository, issues IssueRepository) error) error
}

type txManager struct {
	db *gorm.DB
}

// NewTxManager creates a transaction manager over the given DB handle.
func NewTxManager(db *gorm.DB) TxManager {
	return &txManager{db: db}
}

// WithTransaction executes fn within a database transaction.
func (m *txManager) WithTransaction(ctx context.Context, fn func(ctx context.Context, items ItemRepository, issues IssueRepository) error) error {
	if m.db == nil {
		return errors.ErrStoreUnavailable
	}
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &itemRepository{db: tx}, &issueRepository{db: tx})
	})
}
