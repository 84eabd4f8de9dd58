package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/carads"
)

// Run executes the match command.
func (c *MatchCmd) Run(deps *Dependencies) error {
	cat, err := deps.CatalogSource.LoadCatalog(deps.Ctx)
	if err != nil {
		return errorf(deps, err)
	}

	targets := cat.Makes()
	if c.Make != "" {
		mk := strings.ToLower(c.Make)
		if !cat.HasMake(mk) {
			return errorf(deps, carads.Errorf(carads.ENOTFOUND, "make %q is not in the catalog", c.Make))
		}
		targets = cat.Models(mk)
	}

	m := *deps.Matcher
	m.ScoreCutoff = c.Cutoff
	m.TopN = c.Top

	matches := m.Rank(c.Input, targets)
	if len(matches) == 0 {
		fmt.Fprintln(deps.Stdout, "No matches found.")
		return nil
	}
	for _, match := range matches {
		fmt.Fprintf(deps.Stdout, "%3d  %s\n", match.Score, match.Target)
	}
	return nil
}
