package mock

import (
	"context"

	"github.com/fwojciec/carads"
)

var _ carads.CatalogService = (*CatalogService)(nil)

// CatalogService is a mock implementation of carads.CatalogService.
type CatalogService struct {
	LoadCatalogFn       func(ctx context.Context) (*carads.Catalog, error)
	AddCatalogEntriesFn func(ctx context.Context, entries []carads.CatalogEntry) error
}

func (s *CatalogService) LoadCatalog(ctx context.Context) (*carads.Catalog, error) {
	return s.LoadCatalogFn(ctx)
}

func (s *CatalogService) AddCatalogEntries(ctx context.Context, entries []carads.CatalogEntry) error {
	return s.AddCatalogEntriesFn(ctx, entries)
}
