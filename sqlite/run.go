package sqlite

import (
	"context"

	"github.com/fwojciec/carads"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ carads.RunService = (*RunService)(nil)

// RunService records processing runs in the run log.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// LogRun appends a run to the log, assigning it a new ID.
func (s *RunService) LogRun(ctx context.Context, run *carads.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO run_log (id, task, started_at, finished_at, notes)
		VALUES (?, ?, ?, ?, ?)
	`, run.ID, run.Task, formatTime(run.StartedAt), formatTime(run.FinishedAt), run.Notes)

	return err
}

// FindRuns returns logged runs, most recent first.
func (s *RunService) FindRuns(ctx context.Context) ([]*carads.Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, task, started_at, finished_at, notes
		FROM run_log
		ORDER BY started_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*carads.Run
	for rows.Next() {
		var run carads.Run
		var startedAt, finishedAt string
		if err := rows.Scan(&run.ID, &run.Task, &startedAt, &finishedAt, &run.Notes); err != nil {
			return nil, err
		}
		if run.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
			return nil, err
		}
		if run.FinishedAt, err = parseRFC3339(finishedAt, "finished_at"); err != nil {
			return nil, err
		}
		runs = append(runs, &run)
	}

	return runs, rows.Err()
}
