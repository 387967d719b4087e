package pgx

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxTxKeyType struct{}

var pgxTxKey = pgxTxKeyType{}

const retryBackoff = 20 * time.Millisecond

type TxManager struct {
	db         *pgxpool.Pool
	maxRetries int
}

func NewTxManager(pool *pgxpool.Pool, maxRetries int) *TxManager {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &TxManager{db: pool, maxRetries: maxRetries}
}

// WithTx runs fn in a READ COMMITTED transaction. Each statement sees the
// latest committed rows, so counts taken after a FOR UPDATE or advisory lock
// are current. The outermost call retries the whole fn on serialization
// failures and deadlocks, so fn must only publish results once it returns nil.
func (m *TxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx := TxFromContext(ctx); tx != nil {
		return fn(ctx) // already in tx
	}

	var err error
	for attempt := 0; attempt <= m.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * retryBackoff):
			}
		}

		err = m.runOnce(ctx, fn)
		if !isRetryable(err) {
			return err
		}
	}
	return err
}

func (m *TxManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, pgx.TxOptions{
		IsoLevel: pgx.ReadCommitted,
	})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(contextWithTx(ctx, tx)); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case "40001", "40P01": // serialization_failure, deadlock_detected
		return true
	}
	return false
}

func contextWithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, pgxTxKey, tx)
}

func TxFromContext(ctx context.Context) pgx.Tx {
	if v := ctx.Value(pgxTxKey); v != nil {
		if tx, ok := v.(pgx.Tx); ok {
			return tx
		}
	}
	return nil
}
