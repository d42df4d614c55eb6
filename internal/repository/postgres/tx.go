package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/yourplaces/places-server/internal/model"
)

// querier is the query surface shared by the pool and an open transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txKey struct{}

// queryEngine returns the transaction bound to ctx if one is open,
// otherwise the pool. Repositories route every query through this so that
// calls made inside TxManager.Do join the transaction transparently.
func queryEngine(ctx context.Context, db *Connection) querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return db
}

var _ model.TxManager = (*TxManager)(nil)

// TxManager implements the unit of work over a pgx transaction. The
// dual-document mutations (place record plus the owner's place set) run
// inside Do and are visible to concurrent readers all-or-nothing.
type TxManager struct {
	db *Connection
}

func NewTxManager(db *Connection) *TxManager {
	return &TxManager{db: db}
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
