package mock

import (
	"context"

	"github.com/fwojciec/carads"
)

var _ carads.RunLogger = (*RunLogger)(nil)
var _ carads.RunService = (*RunService)(nil)

// RunLogger is a mock implementation of carads.RunLogger.
type RunLogger struct {
	LogRunFn func(ctx context.Context, run *carads.Run) error
}

func (l *RunLogger) LogRun(ctx context.Context, run *carads.Run) error {
	return l.LogRunFn(ctx, run)
}

// RunService is a mock implementation of carads.RunService.
type RunService struct {
	LogRunFn   func(ctx context.Context, run *carads.Run) error
	FindRunsFn func(ctx context.Context) ([]*carads.Run, error)
}

func (s *RunService) LogRun(ctx context.Context, run *carads.Run) error {
	return s.LogRunFn(ctx, run)
}

func (s *RunService) FindRuns(ctx context.Context) ([]*carads.Run, error) {
	return s.FindRunsFn(ctx)
}
