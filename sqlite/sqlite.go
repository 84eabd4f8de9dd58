// Package sqlite provides SQLite-based storage for raw documents, the
// vehicle catalog, processed listings and the run log.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Wait up to 5 seconds on lock contention instead of failing immediately.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// WAL is not supported for in-memory databases.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	db.db = conn

	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// BeginTx starts a transaction.
func (db *DB) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, nil)
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// createSchema creates the database tables if they don't exist.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS raw_documents (
			url TEXT PRIMARY KEY,
			location TEXT NOT NULL DEFAULT '',
			html TEXT NOT NULL DEFAULT '',
			content_hash TEXT NOT NULL DEFAULT '',
			fetched_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS catalog_entries (
			make TEXT NOT NULL,
			model TEXT NOT NULL,
			short_model TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (make, model)
		);

		CREATE TABLE IF NOT EXISTS listings (
			url TEXT PRIMARY KEY,
			location TEXT NOT NULL DEFAULT '',
			post_id TEXT NOT NULL DEFAULT '',
			odometer REAL,
			odometer_text TEXT,
			title_status TEXT,
			paint TEXT,
			drive TEXT,
			cylinders TEXT,
			condition TEXT,
			fuel TEXT,
			body_type TEXT,
			transmission TEXT,
			vin TEXT,
			name TEXT,
			posted_at TEXT,
			year INTEGER,
			price REAL,
			posting_body TEXT,
			description TEXT,
			title_text TEXT,
			image_count INTEGER,
			latitude REAL,
			longitude REAL,
			make TEXT,
			model TEXT,
			needs_basic_parsing INTEGER NOT NULL DEFAULT 0,
			needs_further_parsing INTEGER NOT NULL DEFAULT 0,
			processed_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_listings_needs_basic ON listings(needs_basic_parsing);
		CREATE INDEX IF NOT EXISTS idx_listings_make ON listings(make);

		CREATE TABLE IF NOT EXISTS run_log (
			id TEXT PRIMARY KEY,
			task TEXT NOT NULL,
			started_at TEXT NOT NULL,
			finished_at TEXT NOT NULL,
			notes TEXT NOT NULL DEFAULT ''
		);
	`

	_, err := db.db.Exec(schema)
	return err
}
