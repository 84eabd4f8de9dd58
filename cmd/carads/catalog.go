package main

import (
	"fmt"

	"github.com/fwojciec/carads/yaml"
)

// Run executes the catalog command.
func (c *CatalogCmd) Run(deps *Dependencies) error {
	entries, err := yaml.NewCatalogFile(c.File).Entries()
	if err != nil {
		return errorf(deps, err)
	}

	if err := deps.Catalog.AddCatalogEntries(deps.Ctx, entries); err != nil {
		return errorf(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Loaded %d catalog entries\n", len(entries))
	return nil
}
