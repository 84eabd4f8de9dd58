package carads

import (
	"context"
	"time"
)

// TaskBasicParsing names processing runs in the run log.
const TaskBasicParsing = "basic_html_parsing"

// Run records one batch of processing.
type Run struct {
	ID         string    `json:"id"`
	Task       string    `json:"task"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	Notes      string    `json:"notes"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.Task == "" {
		return Errorf(EINVALID, "run task required")
	}
	if r.FinishedAt.Before(r.StartedAt) {
		return Errorf(EINVALID, "run finished before it started")
	}
	return nil
}

// RunLogger records processing runs.
type RunLogger interface {
	LogRun(ctx context.Context, run *Run) error
}

// RunService represents a service for managing the run log.
type RunService interface {
	RunLogger

	// FindRuns returns logged runs, most recent first.
	FindRuns(ctx context.Context) ([]*Run, error)
}
