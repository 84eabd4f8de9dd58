package main

import (
	"fmt"

	"github.com/fwojciec/carads/fs"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	dir := fs.NewDocumentDir(c.Dir, c.Location)
	dir.CanonicalURL = deps.CanonicalURL

	docs, err := dir.ReadDocuments(deps.Ctx)
	if err != nil {
		return errorf(deps, err)
	}

	for _, doc := range docs {
		if err := deps.Documents.CreateRawDocument(deps.Ctx, doc); err != nil {
			return errorf(deps, err)
		}
	}

	fmt.Fprintf(deps.Stdout, "Imported %d pages from %s\n", len(docs), c.Dir)
	return nil
}
