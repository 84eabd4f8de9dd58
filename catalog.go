package carads

import (
	"context"
	"slices"
	"strings"
)

// CatalogEntry is one row of the make/model reference table.
// ShortModel is an abbreviated form of Model and may be empty.
type CatalogEntry struct {
	Make       string `json:"make" yaml:"make"`
	Model      string `json:"model" yaml:"model"`
	ShortModel string `json:"shortModel" yaml:"short_model"`
}

// Catalog is the set of canonical makes and their accepted model strings.
//
// Makes and models are lowercase and kept in ascending lexical order. That
// order is the tie-break when several catalog entries occur in the same
// text: the first one wins. A Catalog is read-only once built and safe for
// concurrent use.
type Catalog struct {
	makes  []string
	models map[string][]string
}

// NewCatalog builds a catalog from a make to models mapping. Values are
// lowercased and trimmed; empty values and duplicates are dropped.
func NewCatalog(models map[string][]string) *Catalog {
	c := &Catalog{models: make(map[string][]string, len(models))}
	for mk, ms := range models {
		for _, m := range ms {
			c.add(mk, m)
		}
		c.add(mk, "")
	}
	c.sort()
	return c
}

// NewCatalogFromEntries builds a catalog from reference table rows.
// Both the model and its short form are accepted model strings.
func NewCatalogFromEntries(entries []CatalogEntry) *Catalog {
	c := &Catalog{models: make(map[string][]string)}
	for _, e := range entries {
		c.add(e.Make, e.Model)
		c.add(e.Make, e.ShortModel)
	}
	c.sort()
	return c
}

func (c *Catalog) add(mk, model string) {
	mk = strings.ToLower(strings.TrimSpace(mk))
	if mk == "" {
		return
	}
	models, ok := c.models[mk]
	if !ok {
		c.makes = append(c.makes, mk)
	}
	model = strings.ToLower(strings.TrimSpace(model))
	if model != "" && !slices.Contains(models, model) {
		models = append(models, model)
	}
	c.models[mk] = models
}

func (c *Catalog) sort() {
	slices.Sort(c.makes)
	for _, models := range c.models {
		slices.Sort(models)
	}
}

// Len returns the number of makes in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.makes)
}

// Makes returns the canonical makes in catalog order.
func (c *Catalog) Makes() []string {
	if c == nil {
		return nil
	}
	return slices.Clone(c.makes)
}

// Models returns the accepted model strings for a make in catalog order.
func (c *Catalog) Models(mk string) []string {
	if c == nil {
		return nil
	}
	return slices.Clone(c.models[mk])
}

// HasMake reports whether mk is a canonical make.
func (c *Catalog) HasMake(mk string) bool {
	if c == nil {
		return false
	}
	_, ok := c.models[mk]
	return ok
}

// ResolveMake returns the canonical make mentioned in the listing's display
// name, falling back to the page title when the name is nil or mentions no
// known make. Returns nil when neither does.
func (c *Catalog) ResolveMake(name, title *string) *string {
	if c == nil {
		return nil
	}
	return resolve(name, title, NormalizeMake, c.makes)
}

// ResolveModel is ResolveMake for the models of a canonical make.
// Returns nil for a make that is not in the catalog.
func (c *Catalog) ResolveModel(mk string, name, title *string) *string {
	if c == nil {
		return nil
	}
	models, ok := c.models[mk]
	if !ok {
		return nil
	}
	return resolve(name, title, NormalizeModel, models)
}

func resolve(name, title *string, normalize func(*string) *string, candidates []string) *string {
	for _, text := range []*string{name, title} {
		t := normalize(text)
		if t == nil || *t == "" {
			continue
		}
		if m := firstContained(*t, candidates); m != nil {
			return m
		}
	}
	return nil
}

// firstContained returns the first candidate that occurs in text, either
// as written or with hyphens read as spaces ("mercedes-benz" matches
// "mercedes benz").
func firstContained(text string, candidates []string) *string {
	for _, c := range candidates {
		if strings.Contains(text, c) || strings.Contains(text, strings.ReplaceAll(c, "-", " ")) {
			m := c
			return &m
		}
	}
	return nil
}

// CatalogSource loads the catalog used for a processing run.
type CatalogSource interface {
	LoadCatalog(ctx context.Context) (*Catalog, error)
}

// CatalogService represents a service for managing the catalog.
type CatalogService interface {
	CatalogSource

	// AddCatalogEntries stores reference rows. Existing rows are kept.
	AddCatalogEntries(ctx context.Context, entries []CatalogEntry) error
}
