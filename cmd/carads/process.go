package main

import (
	"fmt"
	"sync"

	"github.com/fwojciec/carads/process"
)

// Run executes the process command.
func (c *ProcessCmd) Run(deps *Dependencies) error {
	p := process.NewProcessor()
	p.Feed = deps.Feed
	p.Catalog = deps.CatalogSource
	p.Extractor = deps.Extractor
	p.Sink = deps.Sink
	p.Runs = deps.Runs
	p.Suggester = deps.Suggester
	p.Logger = deps.Logger
	p.Limit = c.Limit
	p.Seed = c.Seed
	p.Concurrency = c.Concurrency

	var mu sync.Mutex
	result, err := p.Run(deps.Ctx, func(event process.ProgressEvent) {
		mu.Lock()
		defer mu.Unlock()
		switch event.Type {
		case process.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Processing %d pages...\n", event.Total)
		case process.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s\n", event.Completed, event.Total, event.URL)
		}
	})
	if err != nil {
		return errorf(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Processed %d of %d pending pages (%d need further parsing)\n",
		result.Processed, result.Pending, result.Incomplete)
	return nil
}
