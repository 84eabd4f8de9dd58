package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/carads"
)

// Ensure LoggingDocumentFeed implements carads.DocumentFeed.
var _ carads.DocumentFeed = (*LoggingDocumentFeed)(nil)

// LoggingDocumentFeed wraps a DocumentFeed with logging.
type LoggingDocumentFeed struct {
	next   carads.DocumentFeed
	logger *slog.Logger
}

// NewLoggingDocumentFeed creates a new LoggingDocumentFeed.
func NewLoggingDocumentFeed(next carads.DocumentFeed, logger *slog.Logger) *LoggingDocumentFeed {
	return &LoggingDocumentFeed{next: next, logger: logger}
}

// PendingURLs delegates to the wrapped feed and logs the number of pending documents.
func (f *LoggingDocumentFeed) PendingURLs(ctx context.Context) (urls []string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("pending documents",
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.PendingURLs(ctx)
}

// FindDocuments delegates to the wrapped feed and logs requested and found counts.
func (f *LoggingDocumentFeed) FindDocuments(ctx context.Context, urls []string) (docs []*carads.RawDocument, err error) {
	defer func(begin time.Time) {
		f.logger.Info("load documents",
			"requested", len(urls),
			"found", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FindDocuments(ctx, urls)
}
