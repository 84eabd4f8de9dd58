package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/carads"
)

// Ensure LoggingCatalogSource implements carads.CatalogSource.
var _ carads.CatalogSource = (*LoggingCatalogSource)(nil)

// LoggingCatalogSource wraps a CatalogSource with logging.
type LoggingCatalogSource struct {
	next   carads.CatalogSource
	logger *slog.Logger
}

// NewLoggingCatalogSource creates a new LoggingCatalogSource.
func NewLoggingCatalogSource(next carads.CatalogSource, logger *slog.Logger) *LoggingCatalogSource {
	return &LoggingCatalogSource{next: next, logger: logger}
}

// LoadCatalog delegates to the wrapped source and logs the catalog size.
func (s *LoggingCatalogSource) LoadCatalog(ctx context.Context) (cat *carads.Catalog, err error) {
	defer func(begin time.Time) {
		s.logger.Info("load catalog",
			"makes", cat.Len(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LoadCatalog(ctx)
}
