// Package yaml reads vehicle catalog files.
package yaml

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/fwojciec/carads"
	"gopkg.in/yaml.v2"
)

// Ensure CatalogFile implements carads.CatalogSource.
var _ carads.CatalogSource = (*CatalogFile)(nil)

// catalogModel is one model listed under a make.
type catalogModel struct {
	Model      string `yaml:"model"`
	ShortModel string `yaml:"short_model"`
}

// CatalogFile is a catalog stored as YAML, keyed by make:
//
//	honda:
//	  - model: Odyssey
//	    short_model: odyssey
//	  - model: Civic
type CatalogFile struct {
	path string
}

// NewCatalogFile creates a CatalogFile for the file at path.
func NewCatalogFile(path string) *CatalogFile {
	return &CatalogFile{path: path}
}

// Entries reads the file and returns its rows ordered by make.
func (f *CatalogFile) Entries() ([]carads.CatalogEntry, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, carads.Errorf(carads.ENOTFOUND, "catalog file %q not found", f.path)
	} else if err != nil {
		return nil, err
	}
	return ParseCatalog(data)
}

// LoadCatalog reads the file into a Catalog.
func (f *CatalogFile) LoadCatalog(ctx context.Context) (*carads.Catalog, error) {
	entries, err := f.Entries()
	if err != nil {
		return nil, err
	}
	return carads.NewCatalogFromEntries(entries), nil
}

// ParseCatalog decodes catalog YAML. Every model needs a name.
func ParseCatalog(data []byte) ([]carads.CatalogEntry, error) {
	var doc map[string][]catalogModel
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, carads.Errorf(carads.EINVALID, "invalid catalog: %v", err)
	}

	makes := make([]string, 0, len(doc))
	for mk := range doc {
		makes = append(makes, mk)
	}
	slices.Sort(makes)

	var entries []carads.CatalogEntry
	for _, mk := range makes {
		for _, m := range doc[mk] {
			if strings.TrimSpace(m.Model) == "" {
				return nil, carads.Errorf(carads.EINVALID, "catalog make %q has a model without a name", mk)
			}
			entries = append(entries, carads.CatalogEntry{Make: mk, Model: m.Model, ShortModel: m.ShortModel})
		}
	}
	return entries, nil
}
