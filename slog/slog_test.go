package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/fwojciec/carads"
	"github.com/fwojciec/carads/mock"
	carslog "github.com/fwojciec/carads/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs extracted fields at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		price := 8500.0
		inner := &mock.Extractor{
			ExtractFn: func(doc *carads.RawDocument) *carads.Extraction {
				return &carads.Extraction{
					Attributes: carads.AttributeMap{"fuel": "gas", "drive": "fwd"},
					Price:      &price,
				}
			},
		}

		ext := carslog.NewLoggingExtractor(inner, newTestLogger(&buf)).
			Extract(&carads.RawDocument{URL: "https://example.org/1.html"})

		require.NotNil(t, ext)
		output := buf.String()
		assert.Contains(t, output, "level=DEBUG")
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "url=https://example.org/1.html")
		assert.Contains(t, output, "attributes=2")
		assert.Contains(t, output, "price=true")
		assert.Contains(t, output, "name=false")
	})

	t.Run("silent at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(doc *carads.RawDocument) *carads.Extraction {
				return &carads.Extraction{}
			},
		}

		carslog.NewLoggingExtractor(inner, logger).Extract(nil)

		assert.Empty(t, buf.String())
	})
}

func TestLoggingDocumentFeed(t *testing.T) {
	t.Parallel()

	t.Run("logs pending count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.RawDocumentService{
			PendingURLsFn: func(ctx context.Context) ([]string, error) {
				return []string{"a", "b", "c"}, nil
			},
		}

		urls, err := carslog.NewLoggingDocumentFeed(inner, newTestLogger(&buf)).PendingURLs(context.Background())

		require.NoError(t, err)
		assert.Len(t, urls, 3)
		output := buf.String()
		assert.Contains(t, output, "pending documents")
		assert.Contains(t, output, "count=3")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs requested and found documents", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.RawDocumentService{
			FindDocumentsFn: func(ctx context.Context, urls []string) ([]*carads.RawDocument, error) {
				return []*carads.RawDocument{{URL: urls[0]}}, nil
			},
		}

		docs, err := carslog.NewLoggingDocumentFeed(inner, newTestLogger(&buf)).
			FindDocuments(context.Background(), []string{"a", "b"})

		require.NoError(t, err)
		assert.Len(t, docs, 1)
		output := buf.String()
		assert.Contains(t, output, "load documents")
		assert.Contains(t, output, "requested=2")
		assert.Contains(t, output, "found=1")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.RawDocumentService{
			PendingURLsFn: func(ctx context.Context) ([]string, error) {
				return nil, errors.New("database is locked")
			},
		}

		_, err := carslog.NewLoggingDocumentFeed(inner, newTestLogger(&buf)).PendingURLs(context.Background())

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"database is locked\"")
	})
}

func TestLoggingCatalogSource_LoadCatalog(t *testing.T) {
	t.Parallel()

	t.Run("logs catalog size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.CatalogService{
			LoadCatalogFn: func(ctx context.Context) (*carads.Catalog, error) {
				return carads.NewCatalog(map[string][]string{"honda": {"civic"}, "ford": {"focus"}}), nil
			},
		}

		cat, err := carslog.NewLoggingCatalogSource(inner, newTestLogger(&buf)).LoadCatalog(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, cat.Len())
		assert.Contains(t, buf.String(), "makes=2")
	})

	t.Run("logs error without catalog", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.CatalogService{
			LoadCatalogFn: func(ctx context.Context) (*carads.Catalog, error) {
				return nil, errors.New("no such table")
			},
		}

		_, err := carslog.NewLoggingCatalogSource(inner, newTestLogger(&buf)).LoadCatalog(context.Background())

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "makes=0")
		assert.Contains(t, output, "err=\"no such table\"")
	})
}

func TestLoggingListingSink_SaveListings(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.ListingService{
		SaveListingsFn: func(ctx context.Context, listings []*carads.Listing) error {
			return nil
		},
	}

	err := carslog.NewLoggingListingSink(inner, newTestLogger(&buf)).SaveListings(context.Background(), []*carads.Listing{
		{URL: "a", NeedsFurtherParsing: true},
		{URL: "b"},
		{URL: "c", NeedsFurtherParsing: true},
	})

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "save listings")
	assert.Contains(t, output, "count=3")
	assert.Contains(t, output, "incomplete=2")
}

func TestLoggingRunLogger_LogRun(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.RunLogger{
		LogRunFn: func(ctx context.Context, run *carads.Run) error {
			return nil
		},
	}
	started := time.Date(2023, 8, 6, 9, 0, 0, 0, time.UTC)

	err := carslog.NewLoggingRunLogger(inner, newTestLogger(&buf)).LogRun(context.Background(), &carads.Run{
		Task:       carads.TaskBasicParsing,
		StartedAt:  started,
		FinishedAt: started.Add(90 * time.Second),
		Notes:      "Processed 3 HTML pages on host",
	})

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "task=basic_html_parsing")
	assert.Contains(t, output, "duration=1m30s")
	assert.Contains(t, output, "notes=\"Processed 3 HTML pages on host\"")
}
