package sqlite

import (
	"context"
	"encoding/hex"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/carads"
)

// Compile-time interface verification.
var _ carads.RawDocumentService = (*RawDocumentService)(nil)

// findDocumentsBatch bounds the number of bind parameters per query.
const findDocumentsBatch = 500

// RawDocumentService implements carads.RawDocumentService using SQLite.
type RawDocumentService struct {
	db *DB
}

// NewRawDocumentService creates a new RawDocumentService.
func NewRawDocumentService(db *DB) *RawDocumentService {
	return &RawDocumentService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// CreateRawDocument stores a document, replacing any document with the same URL.
// A zero FetchedAt is set to the current time.
func (s *RawDocumentService) CreateRawDocument(ctx context.Context, doc *carads.RawDocument) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	if doc.FetchedAt.IsZero() {
		doc.FetchedAt = time.Now().UTC()
	}
	doc.ContentHash = hashContent(doc.HTML)

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO raw_documents (url, location, html, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?)
	`, doc.URL, doc.Location, doc.HTML, doc.ContentHash, formatTime(doc.FetchedAt))

	return err
}

// PendingURLs returns the URLs of documents that were never processed,
// together with processed listings still flagged for basic parsing.
func (s *RawDocumentService) PendingURLs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT url FROM listings WHERE needs_basic_parsing = 1
		UNION
		SELECT r.url FROM raw_documents r
		LEFT JOIN listings l ON l.url = r.url
		WHERE l.url IS NULL
		ORDER BY url
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}

	return urls, rows.Err()
}

// FindDocuments returns the stored documents for urls, ordered by URL.
// URLs without a stored document are skipped.
func (s *RawDocumentService) FindDocuments(ctx context.Context, urls []string) ([]*carads.RawDocument, error) {
	var docs []*carads.RawDocument
	for start := 0; start < len(urls); start += findDocumentsBatch {
		end := min(start+findDocumentsBatch, len(urls))
		batch, err := s.findDocuments(ctx, urls[start:end])
		if err != nil {
			return nil, err
		}
		docs = append(docs, batch...)
	}
	return docs, nil
}

func (s *RawDocumentService) findDocuments(ctx context.Context, urls []string) ([]*carads.RawDocument, error) {
	args := make([]any, len(urls))
	for i, u := range urls {
		args[i] = u
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT url, location, html, content_hash, fetched_at
		FROM raw_documents
		WHERE url IN (`+placeholders(len(urls))+`)
		ORDER BY url
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*carads.RawDocument
	for rows.Next() {
		var doc carads.RawDocument
		var fetchedAt string

		if err := rows.Scan(&doc.URL, &doc.Location, &doc.HTML, &doc.ContentHash, &fetchedAt); err != nil {
			return nil, err
		}

		doc.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}
