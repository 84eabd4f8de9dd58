package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/carads"
)

// Ensure LoggingListingSink implements carads.ListingSink.
var _ carads.ListingSink = (*LoggingListingSink)(nil)

// LoggingListingSink wraps a ListingSink with logging.
type LoggingListingSink struct {
	next   carads.ListingSink
	logger *slog.Logger
}

// NewLoggingListingSink creates a new LoggingListingSink.
func NewLoggingListingSink(next carads.ListingSink, logger *slog.Logger) *LoggingListingSink {
	return &LoggingListingSink{next: next, logger: logger}
}

// SaveListings delegates to the wrapped sink and logs how many records still
// need further parsing.
func (s *LoggingListingSink) SaveListings(ctx context.Context, listings []*carads.Listing) (err error) {
	defer func(begin time.Time) {
		incomplete := 0
		for _, l := range listings {
			if l.NeedsFurtherParsing {
				incomplete++
			}
		}
		s.logger.Info("save listings",
			"count", len(listings),
			"incomplete", incomplete,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveListings(ctx, listings)
}
