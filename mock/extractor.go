package mock

import "github.com/fwojciec/carads"

var _ carads.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of carads.Extractor.
type Extractor struct {
	ExtractFn func(doc *carads.RawDocument) *carads.Extraction
}

func (e *Extractor) Extract(doc *carads.RawDocument) *carads.Extraction {
	return e.ExtractFn(doc)
}
