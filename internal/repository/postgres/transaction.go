package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"docuvault/internal/domain"
	"docuvault/internal/domain/repositories"
)

// TransactionManager implements the TransactionManager interface
type TransactionManager struct {
	pool *pgxpool.Pool
}

// NewTransactionManager creates a new transaction manager
func NewTransactionManager(pool *pgxpool.Pool) repositories.TransactionManager {
	return &TransactionManager{pool: pool}
}

// ExecTx executes a function within a transaction
func (tm *TransactionManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return tm.execTx(ctx, pgx.TxOptions{}, fn)
}

// ExecSerializableTx executes a function within a SERIALIZABLE
// transaction. Serialization failures are mapped to
// domain.ConcurrencyConflictError so the caller can retry.
func (tm *TransactionManager) ExecSerializableTx(ctx context.Context, fn repositories.TxFn) error {
	err := tm.execTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
	if IsPgSerializationError(err) {
		return &domain.ConcurrencyConflictError{
			Message: "transaction conflicted with a concurrent update",
		}
	}
	return err
}

func (tm *TransactionManager) execTx(ctx context.Context, opts pgx.TxOptions, fn repositories.TxFn) error {
	tx, err := tm.pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	// Defer rollback - safe even if commit succeeds
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	// Store transaction in context so repositories can access it
	txCtx := repositories.SetTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
