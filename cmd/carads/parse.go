package main

import (
	"encoding/json"
	"os"

	"github.com/fwojciec/carads"
	"github.com/fwojciec/carads/fs"
	"github.com/fwojciec/carads/process"
	"github.com/fwojciec/carads/yaml"
)

// Run executes the parse command. Nothing is stored.
func (c *ParseCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return errorf(deps, err)
	}

	html := string(data)
	url := deps.CanonicalURL(html)
	if url == "" {
		if url, err = fs.FileURL(c.File); err != nil {
			return errorf(deps, err)
		}
	}

	var source carads.CatalogSource = deps.CatalogSource
	if c.Catalog != "" {
		source = yaml.NewCatalogFile(c.Catalog)
	}
	cat, err := source.LoadCatalog(deps.Ctx)
	if err != nil {
		return errorf(deps, err)
	}

	p := process.NewProcessor()
	p.Extractor = deps.Extractor
	p.Suggester = deps.Suggester
	p.Logger = deps.Logger

	listing := p.ProcessDocument(&carads.RawDocument{URL: url, Location: c.Location, HTML: html}, cat)

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(listing)
}
