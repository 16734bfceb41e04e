package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateIdentifier reports that another writer already used the id.
var ErrDuplicateIdentifier = errors.New("duplicate record identifier")

const uniqueViolation = "23505"

// Querier is the subset of *pgxpool.Pool the Postgres collection needs.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresCollection stores one collection as rows of support_records keyed by
// collection name. The unique (collection, record_id) index rejects duplicate
// identifiers coming from other processes.
type PostgresCollection struct {
	db   Querier
	name string
}

// NewPostgresCollection returns the collection called name.
func NewPostgresCollection(db Querier, name string) *PostgresCollection {
	return &PostgresCollection{db: db, name: name}
}

// EnsureExists creates the shared records table when missing.
func (c *PostgresCollection) EnsureExists(ctx context.Context) error {
	const query = `
        CREATE TABLE IF NOT EXISTS support_records (
            seq BIGSERIAL PRIMARY KEY,
            collection TEXT NOT NULL,
            record_id TEXT NOT NULL,
            body JSONB NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            UNIQUE (collection, record_id)
        )`
	if _, err := c.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("create support_records: %w", err)
	}
	return nil
}

// ReadAll returns the collection's documents in insertion order.
func (c *PostgresCollection) ReadAll(ctx context.Context) ([]json.RawMessage, error) {
	const query = `
        SELECT body FROM support_records
        WHERE collection=$1
        ORDER BY seq`
	rows, err := c.db.Query(ctx, query, c.name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []json.RawMessage{}
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		docs = append(docs, json.RawMessage(body))
	}
	return docs, rows.Err()
}

// Append inserts doc under id.
func (c *PostgresCollection) Append(ctx context.Context, id string, doc json.RawMessage) error {
	const query = `
        INSERT INTO support_records (collection, record_id, body)
        VALUES ($1,$2,$3)`
	_, err := c.db.Exec(ctx, query, c.name, id, []byte(doc))
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", ErrDuplicateIdentifier, id)
	}
	return err
}
