package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/simaogato/transferauth/internal/domain"
)

type txKey struct{}

func txFromContext(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sql.Tx)
	return tx, ok
}

// transactionManager implements domain.TransactionManager. Repositories
// pick the transaction up from the context passed to fn.
type transactionManager struct {
	db *DB
}

// NewTransactionManager creates a new transaction manager
func NewTransactionManager(db *DB) domain.TransactionManager {
	return &transactionManager{db: db}
}

// Run executes fn inside a READ COMMITTED transaction. A call made while a
// transaction is already open joins it.
func (m *transactionManager) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
