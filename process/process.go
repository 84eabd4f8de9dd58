// Package process runs one batch of listing processing: it loads the
// catalog, samples pending documents, turns each into a classified listing
// and stores the results.
package process

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/fwojciec/carads"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the documents processed at once.
const DefaultConcurrency = 8

// Processor turns pending raw documents into stored listings.
type Processor struct {
	Feed      carads.DocumentFeed
	Catalog   carads.CatalogSource
	Extractor carads.Extractor
	Sink      carads.ListingSink
	// Runs is optional. When set, every batch is recorded in the run log.
	Runs carads.RunLogger
	// Suggester is optional. When set, unresolved makes and models are
	// logged with close catalog strings.
	Suggester carads.Suggester

	Limit       int
	Seed        uint64
	Concurrency int

	Logger *slog.Logger
	// Now and Hostname default to time.Now and os.Hostname.
	Now      func() time.Time
	Hostname string
}

// NewProcessor returns a Processor with the default batch limit, seed and
// concurrency.
func NewProcessor() *Processor {
	return &Processor{
		Limit:       carads.DefaultBatchLimit,
		Seed:        carads.DefaultSampleSeed,
		Concurrency: DefaultConcurrency,
	}
}

// Result holds the outcome of a batch.
type Result struct {
	Pending    int
	Processed  int
	Incomplete int
	Run        *carads.Run
}

// ProgressEvent reports progress during a batch.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress. Completed events
// may be reported from several goroutines at once.
type ProgressFunc func(event ProgressEvent)

// Run processes one batch. Listings are saved in the order the feed
// returned their documents. Storage failures abort the batch; malformed
// documents never do.
func (p *Processor) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	started := p.now()

	cat, err := p.Catalog.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	pending, err := p.Feed.PendingURLs(ctx)
	if err != nil {
		return nil, fmt.Errorf("pending documents: %w", err)
	}
	batch := carads.SampleURLs(pending, p.Limit, p.Seed)

	docs, err := p.Feed.FindDocuments(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}

	listings, err := p.processAll(ctx, docs, cat, progress)
	if err != nil {
		return nil, err
	}

	if len(listings) > 0 {
		if err := p.Sink.SaveListings(ctx, listings); err != nil {
			return nil, fmt.Errorf("save listings: %w", err)
		}
	}

	result := &Result{Pending: len(pending), Processed: len(listings)}
	for _, l := range listings {
		if l.NeedsFurtherParsing {
			result.Incomplete++
		}
	}

	result.Run = &carads.Run{
		Task:       carads.TaskBasicParsing,
		StartedAt:  started,
		FinishedAt: p.now(),
		Notes:      fmt.Sprintf("Processed %d HTML pages on %s", len(listings), p.hostname()),
	}
	if p.Runs != nil {
		if err := p.Runs.LogRun(ctx, result.Run); err != nil {
			return nil, fmt.Errorf("log run: %w", err)
		}
	}

	return result, nil
}

func (p *Processor) processAll(ctx context.Context, docs []*carads.RawDocument, cat *carads.Catalog, progress ProgressFunc) ([]*carads.Listing, error) {
	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(docs)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	listings := make([]*carads.Listing, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, doc := range docs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			listings[i] = p.ProcessDocument(doc, cat)
			n := completed.Add(1)
			if progress != nil {
				progress(ProgressEvent{Type: ProgressCompleted, Completed: int(n), Total: total, URL: doc.URL})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}
	return listings, nil
}

// ProcessDocument extracts, assembles and classifies a single document.
func (p *Processor) ProcessDocument(doc *carads.RawDocument, cat *carads.Catalog) *carads.Listing {
	l := carads.Assemble(doc, p.Extractor.Extract(doc), cat)
	l.ProcessedAt = p.now().UTC()

	logger := p.logger()
	if l.Odometer != nil && !l.Odometer.Numeric() {
		logger.Debug("non-numeric odometer", "url", l.URL, "odometer", l.Odometer.Text)
	}
	if l.Make == nil {
		logger.Debug("unresolved make", "url", l.URL,
			"suggestions", p.suggest(logger, l, cat.Makes()))
	} else if l.Model == nil {
		logger.Debug("unresolved model", "url", l.URL, "make", *l.Make,
			"suggestions", p.suggest(logger, l, cat.Models(*l.Make)))
	}
	return l
}

// suggest returns catalog strings resembling the listing's display name,
// or its title when there is no display name.
func (p *Processor) suggest(logger *slog.Logger, l *carads.Listing, targets []string) []string {
	if p.Suggester == nil || !logger.Enabled(context.Background(), slog.LevelDebug) {
		return nil
	}
	text := l.Name
	if text == nil {
		text = l.TitleText
	}
	text = carads.NormalizeModel(carads.NormalizeMake(text))
	if text == nil || *text == "" || len(targets) == 0 {
		return nil
	}
	return p.Suggester.FindBestMatch(*text, targets)
}

func (p *Processor) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

func (p *Processor) hostname() string {
	if p.Hostname != "" {
		return p.Hostname
	}
	host, err := os.Hostname()
	if err != nil {
		return "unknown host"
	}
	return host
}

func (p *Processor) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
