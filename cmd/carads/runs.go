package main

import (
	"fmt"
	"time"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	runs, err := deps.RunHistory.FindRuns(deps.Ctx)
	if err != nil {
		return errorf(deps, err)
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs logged. Use 'carads process' to run a batch.")
		return nil
	}

	for _, run := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			run.StartedAt.UTC().Format(time.RFC3339),
			run.FinishedAt.Sub(run.StartedAt).Round(time.Second),
			run.Task, run.Notes)
	}
	return nil
}
