package sqlite

import (
	"context"
	"strings"

	"github.com/fwojciec/carads"
)

// Compile-time interface verification.
var _ carads.CatalogService = (*CatalogService)(nil)

// CatalogService implements carads.CatalogService using SQLite.
type CatalogService struct {
	db *DB
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(db *DB) *CatalogService {
	return &CatalogService{db: db}
}

// AddCatalogEntries stores catalog rows in a single transaction. Makes and
// models are lowercased; an existing make/model pair is replaced.
func (s *CatalogService) AddCatalogEntries(ctx context.Context, entries []carads.CatalogEntry) error {
	for _, e := range entries {
		if strings.TrimSpace(e.Make) == "" || strings.TrimSpace(e.Model) == "" {
			return carads.Errorf(carads.EINVALID, "catalog entry requires make and model")
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO catalog_entries (make, model, short_model)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx,
			strings.ToLower(strings.TrimSpace(e.Make)),
			strings.ToLower(strings.TrimSpace(e.Model)),
			strings.ToLower(strings.TrimSpace(e.ShortModel)),
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadCatalog reads every catalog row into a Catalog.
func (s *CatalogService) LoadCatalog(ctx context.Context) (*carads.Catalog, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT make, model, short_model FROM catalog_entries ORDER BY make, model
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []carads.CatalogEntry
	for rows.Next() {
		var e carads.CatalogEntry
		if err := rows.Scan(&e.Make, &e.Model, &e.ShortModel); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return carads.NewCatalogFromEntries(entries), nil
}
