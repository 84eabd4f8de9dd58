package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/carads"
	"github.com/fwojciec/carads/excelize"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	var filter carads.ListingFilter
	if c.Make != "" {
		mk := strings.ToLower(c.Make)
		filter.Make = &mk
	}
	if c.Incomplete {
		incomplete := true
		filter.NeedsFurtherParsing = &incomplete
	}

	listings, err := deps.Listings.FindListings(deps.Ctx, filter)
	if err != nil {
		return errorf(deps, err)
	}

	f, err := os.Create(c.Out)
	if err != nil {
		return errorf(deps, err)
	}
	if err := excelize.NewExporter().WriteListings(f, listings); err != nil {
		f.Close()
		return errorf(deps, err)
	}
	if err := f.Close(); err != nil {
		return errorf(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Exported %d listings to %s\n", len(listings), c.Out)
	return nil
}
