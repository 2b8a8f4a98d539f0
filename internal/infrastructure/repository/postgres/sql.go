package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/devShamim/match-stats-sub000/internal/platform/resilience"
	"github.com/devShamim/match-stats-sub000/internal/usecase"
)

// DB wraps the pool with a circuit breaker. Every repository call goes through run.
type DB struct {
	x       *sqlx.DB
	breaker *resilience.CircuitBreaker
}

// NewDB accepts a nil breaker, in which case calls are never short-circuited.
func NewDB(x *sqlx.DB, breaker *resilience.CircuitBreaker) *DB {
	return &DB{x: x, breaker: breaker}
}

func (d *DB) run(op string, fn func() error) error {
	err := d.breaker.Execute(fn, countsAgainstBreaker)
	if errors.Is(err, resilience.ErrCircuitOpen) {
		return fmt.Errorf("%w: postgres %s: %v", usecase.ErrDependencyUnavailable, op, err)
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: postgres %s: %v", usecase.ErrConflict, op, err)
	}
	return err
}

// inTx runs fn in one transaction under the breaker.
func (d *DB) inTx(ctx context.Context, op string, fn func(tx *sqlx.Tx) error) error {
	return d.run(op, func() error {
		tx, err := d.x.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin tx for %s: %w", op, err)
		}
		defer func() {
			_ = tx.Rollback()
		}()

		if err := fn(tx); err != nil {
			return err
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s tx: %w", op, err)
		}
		return nil
	})
}

// countsAgainstBreaker ignores outcomes that say nothing about database health.
func countsAgainstBreaker(err error) bool {
	return !isNotFound(err) && !isUniqueViolation(err) && !errors.Is(err, context.Canceled)
}

const uniqueViolation pq.ErrorCode = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func nullString(value string) sql.NullString {
	if value == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}

func nullInt(value *int) sql.NullInt64 {
	if value == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*value), Valid: true}
}

func nullFloat(value *float64) sql.NullFloat64 {
	if value == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *value, Valid: true}
}

func intPtr(value sql.NullInt64) *int {
	if !value.Valid {
		return nil
	}
	v := int(value.Int64)
	return &v
}

func floatPtr(value sql.NullFloat64) *float64 {
	if !value.Valid {
		return nil
	}
	v := value.Float64
	return &v
}

func stringPtr(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	v := value.String
	return &v
}

func stringSliceToAny(items []string) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}
