package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/carads"
)

// Ensure LoggingRunLogger implements carads.RunLogger.
var _ carads.RunLogger = (*LoggingRunLogger)(nil)

// LoggingRunLogger wraps a RunLogger with logging.
type LoggingRunLogger struct {
	next   carads.RunLogger
	logger *slog.Logger
}

// NewLoggingRunLogger creates a new LoggingRunLogger.
func NewLoggingRunLogger(next carads.RunLogger, logger *slog.Logger) *LoggingRunLogger {
	return &LoggingRunLogger{next: next, logger: logger}
}

// LogRun delegates to the wrapped logger and logs the run summary.
func (l *LoggingRunLogger) LogRun(ctx context.Context, run *carads.Run) (err error) {
	defer func() {
		l.logger.Info("run",
			"task", run.Task,
			"duration", run.FinishedAt.Sub(run.StartedAt),
			"notes", run.Notes,
			"err", err,
		)
	}()
	return l.next.LogRun(ctx, run)
}
