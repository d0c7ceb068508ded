// Package repo contains all database access logic for the rosterbook API.
// The whole dataset persists as one JSONB document in the documents table,
// replaced wholesale on every save (upsert by fixed key, never merged
// field-by-field). No business logic lives here; only SQL and the wire
// codec.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/okerlund/rosterbook/internal/domain"
)

// documentKey is the fixed id of the single persisted record.
const documentKey = "roster"

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DocumentRepo defines the persistence operations for the state document.
type DocumentRepo interface {
	// Load reads and decodes the document.
	// Returns domain.ErrNotFound when no document has been saved yet.
	Load(ctx context.Context) (domain.State, error)

	// Save encodes the snapshot and upserts it under the fixed key,
	// replacing any previous version.
	Save(ctx context.Context, s domain.State) error
}

// pgDocumentRepo is the Postgres implementation of DocumentRepo.
type pgDocumentRepo struct {
	db db
}

// NewDocumentRepo constructs a DocumentRepo backed by the provided db
// connection. In production pass *pgxpool.Pool; in tests pass a pgx.Tx
// for rollback isolation.
func NewDocumentRepo(db db) DocumentRepo {
	return &pgDocumentRepo{db: db}
}

// Load reads the single document row and decodes it leniently.
func (r *pgDocumentRepo) Load(ctx context.Context) (domain.State, error) {
	const q = `SELECT data FROM documents WHERE id = @id`

	var data []byte
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": documentKey}).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.State{}, fmt.Errorf("repo.DocumentRepo.Load: %w", domain.ErrNotFound)
		}
		return domain.State{}, fmt.Errorf("repo.DocumentRepo.Load: %w", err)
	}

	return DecodeDocument(data), nil
}

// Save upserts the encoded snapshot under the fixed key.
func (r *pgDocumentRepo) Save(ctx context.Context, s domain.State) error {
	data, err := EncodeDocument(s)
	if err != nil {
		return fmt.Errorf("repo.DocumentRepo.Save: encode: %w", err)
	}

	const q = `
		INSERT INTO documents (id, data, updated_at)
		VALUES (@id, @data, now())
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": documentKey, "data": data}); err != nil {
		return fmt.Errorf("repo.DocumentRepo.Save: %w", err)
	}
	return nil
}
