// Package database wraps database/sql with the project's transaction and
// timeout conventions. All repositories go through WithTx for multi-statement
// mutations so a cancelled or failed call never leaves a partial write.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/linenlady/inventory/pkg/logger"
)

const (
	// OpTimeout bounds every single database call. Exceeding it surfaces as a
	// retryable infrastructure error, never as a semantic failure.
	OpTimeout = 5 * time.Second

	maxOpenConns    = 25
	maxIdleConns    = 5
	connMaxLifetime = 30 * time.Minute
)

// Database wraps a *sql.DB connection pool.
type Database struct {
	db  *sql.DB
	log logger.Logger
}

// NewPool opens a pgx-backed connection pool against dbURL and verifies
// connectivity with a bounded ping.
func NewPool(ctx context.Context, dbURL string, log logger.Logger) (*Database, error) {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, OpTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Database{db: db, log: log}, nil
}

// DB returns the underlying *sql.DB for single-statement reads and for
// libraries that need direct access (event bus, migrator).
func (d *Database) DB() *sql.DB {
	return d.db
}

// Ping checks connection health.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}
	return nil
}

// Close shuts down the connection pool.
func (d *Database) Close() {
	_ = d.db.Close()
}

// OpContext derives a context bounded by OpTimeout for single-statement
// operations that run outside WithTx.
func (d *Database) OpContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, OpTimeout)
}

// WithTx runs fn inside a transaction with a bounded deadline. The transaction
// is rolled back on error or panic, committed otherwise. Row locks taken via
// SELECT ... FOR UPDATE inside fn are held until commit/rollback, which is how
// per-entity critical sections are serialized.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	ctx, cancel := context.WithTimeout(ctx, OpTimeout)
	defer cancel()

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			d.log.ErrorContext(ctx, "tx rollback failed", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// IsUnavailable reports whether err is an infrastructure failure (timeout,
// connectivity) as opposed to a semantic one. Callers wrap such errors in the
// domain's unavailable sentinel so they are never mistaken for "not found".
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 08 — connection exceptions; 57014 — statement timeout.
		return pgErr.Code[:2] == "08" || pgErr.Code == "57014"
	}
	return errors.Is(err, sql.ErrConnDone)
}

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation, optionally matching a specific constraint name.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
