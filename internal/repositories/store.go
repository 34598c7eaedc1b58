package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

const createKeyValueTable = `
	CREATE TABLE IF NOT EXISTS key_values (
		key_name   VARCHAR(64) PRIMARY KEY,
		value_json TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)
`

// SQLKeyValueRepository is the durable store on Postgres (pgx) or SQLite.
// Queries are written with ? placeholders and rebound for the driver.
type SQLKeyValueRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewSQLKeyValueRepository creates a store over db.
func NewSQLKeyValueRepository(db *sqlx.DB) *SQLKeyValueRepository {
	return &SQLKeyValueRepository{db: db, now: time.Now}
}

// Migrate creates the key_values table if it does not exist.
func (r *SQLKeyValueRepository) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, createKeyValueTable)

	logger.Log.Infow("migrate",
		"query", strings.Join(strings.Fields(createKeyValueTable), " "),
		"error", err,
	)

	return err
}

// Get returns the value stored under key or models.ErrNotFound.
func (r *SQLKeyValueRepository) Get(ctx context.Context, key string) (string, error) {
	query := r.db.Rebind(`SELECT value_json FROM key_values WHERE key_name = ?`)

	var value string
	err := r.db.GetContext(ctx, &value, query, key)

	logger.Log.Debugw("select",
		"query", query,
		"args", []any{key},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%s: %w", key, models.ErrNotFound)
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set upserts value under key.
func (r *SQLKeyValueRepository) Set(ctx context.Context, key, value string) error {
	query := r.db.Rebind(`
		INSERT INTO key_values (key_name, value_json, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key_name) DO UPDATE
		SET value_json = excluded.value_json,
		    updated_at = excluded.updated_at
	`)
	args := []any{key, value, r.now().UTC()}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("upsert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
