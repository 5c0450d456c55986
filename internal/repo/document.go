// Package repo contains all database access logic for the WanderAI planner.
// The persisted plan collection lives as one JSON document per storage key in
// the plan_documents table. No business logic lives here — only SQL and type
// mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lic521/wanderai/internal/domain"
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

// DocumentRepo defines the durable key-value boundary the plan store writes
// through. One key holds one JSON document; Put replaces the whole document.
// The store layer depends on this interface, not the Postgres implementation,
// which allows it to be unit-tested with an in-memory double.
type DocumentRepo interface {
	// Get returns the document stored under key.
	// Returns domain.ErrNotFound if no document with that key exists.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores doc under key, replacing any prior contents.
	Put(ctx context.Context, key string, doc []byte) error
}

// pgDocumentRepo is the Postgres implementation of DocumentRepo.
type pgDocumentRepo struct {
	db db
}

// NewDocumentRepo constructs a DocumentRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewDocumentRepo(db db) DocumentRepo {
	return &pgDocumentRepo{db: db}
}

// Get retrieves the raw document stored under key.
func (r *pgDocumentRepo) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT doc FROM plan_documents WHERE key = @key`

	var doc []byte
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("repo.DocumentRepo.Get: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("repo.DocumentRepo.Get: %w", err)
	}
	return doc, nil
}

// Put upserts the full document under key. Writes are last-write-wins: every
// mutation of the plan collection replaces the whole document.
func (r *pgDocumentRepo) Put(ctx context.Context, key string, doc []byte) error {
	const q = `
		INSERT INTO plan_documents (key, doc)
		VALUES (@key, @doc)
		ON CONFLICT (key) DO UPDATE
		SET doc = excluded.doc, updated_at = now()`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"key": key, "doc": doc}); err != nil {
		return fmt.Errorf("repo.DocumentRepo.Put: %w", err)
	}
	return nil
}
