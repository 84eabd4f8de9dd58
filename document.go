package carads

import (
	"context"
	"math/rand/v2"
	"slices"
	"time"
)

// Batch defaults for a processing run.
const (
	DefaultBatchLimit = 2500
	DefaultSampleSeed = uint64(20230806)
)

// RawDocument is a previously fetched listing page.
type RawDocument struct {
	URL         string    `json:"url"`
	Location    string    `json:"location"`
	HTML        string    `json:"-"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *RawDocument) Validate() error {
	if d.URL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	return nil
}

// DocumentFeed supplies the raw documents that still need processing.
type DocumentFeed interface {
	// PendingURLs returns the distinct URLs of documents that were never
	// processed or whose record still needs basic parsing.
	PendingURLs(ctx context.Context) ([]string, error)

	// FindDocuments returns the stored documents for the given URLs.
	// URLs without a stored document are skipped.
	FindDocuments(ctx context.Context, urls []string) ([]*RawDocument, error)
}

// RawDocumentService represents a service for managing raw documents.
type RawDocumentService interface {
	DocumentFeed

	// CreateRawDocument stores a document, replacing any document with the
	// same URL.
	CreateRawDocument(ctx context.Context, doc *RawDocument) error
}

// SampleURLs bounds a batch to limit URLs. When there are more candidates
// than the limit it returns a pseudo-random subset drawn with the given
// seed. The candidates are sorted first, so the same set of URLs and seed
// always select the same subset regardless of feed order. A limit <= 0
// disables sampling.
func SampleURLs(urls []string, limit int, seed uint64) []string {
	out := slices.Clone(urls)
	if limit <= 0 || len(out) <= limit {
		return out
	}
	slices.Sort(out)

	r := rand.New(rand.NewPCG(seed, seed))
	for i := 0; i < limit; i++ {
		j := i + r.IntN(len(out)-i)
		out[i], out[j] = out[j], out[i]
	}
	return out[:limit]
}
