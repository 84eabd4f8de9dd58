// Package slog provides logging decorators for carads services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/carads"
)

// Ensure LoggingExtractor implements carads.Extractor.
var _ carads.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   carads.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next carads.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs which fields were found.
func (e *LoggingExtractor) Extract(doc *carads.RawDocument) (ext *carads.Extraction) {
	defer func(begin time.Time) {
		var url string
		if doc != nil {
			url = doc.URL
		}
		if ext == nil {
			e.logger.Debug("extract", "url", url, "duration", time.Since(begin))
			return
		}
		e.logger.Debug("extract",
			"url", url,
			"attributes", len(ext.Attributes),
			"name", ext.DisplayName != nil,
			"price", ext.Price != nil,
			"geo", ext.Latitude != nil,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(doc)
}
