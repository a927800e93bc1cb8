// Package repo contains all database access logic for the visitor log.
// Each entity has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan helpers
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// Store bundles the entity repos bound to one connection source.
// NewStore over a pool gives the normal request-scoped repos; NewStore over a
// pgx.Tx gives repos whose writes commit or roll back together.
type Store struct {
	Visitors VisitorRepo
	Hosts    HostRepo
	Visits   VisitRepo
}

// NewStore constructs a Store whose repos all share the given connection source.
func NewStore(d db) Store {
	return Store{
		Visitors: NewVisitorRepo(d),
		Hosts:    NewHostRepo(d),
		Visits:   NewVisitRepo(d),
	}
}

// TxRunner runs a function inside a single database transaction, handing it a
// Store bound to that transaction. The check-in sequence (find-or-create the
// visitor, then create the visit referencing it) is the one multi-step write
// in the system and must be atomic so a concurrent duplicate visitor is never
// created for the same logical check-in.
type TxRunner interface {
	InTx(ctx context.Context, fn func(Store) error) error
}

// pgTxRunner is the pgxpool-backed implementation of TxRunner.
type pgTxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constructs a TxRunner that opens transactions on the given pool.
func NewTxRunner(pool *pgxpool.Pool) TxRunner {
	return &pgTxRunner{pool: pool}
}

// InTx begins a transaction, runs fn against a tx-bound Store, and commits.
// Any error from fn rolls the transaction back and is returned unwrapped so
// callers can still match sentinel errors with errors.Is.
func (r *pgTxRunner) InTx(ctx context.Context, fn func(Store) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repo.TxRunner.InTx: begin: %w", err)
	}
	// Rollback after a successful Commit is a harmless no-op.
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStore(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repo.TxRunner.InTx: commit: %w", err)
	}
	return nil
}
