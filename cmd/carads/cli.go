package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/carads"
	"github.com/fwojciec/carads/levenshtein"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Documents     carads.RawDocumentService
	Feed          carads.DocumentFeed
	Catalog       carads.CatalogService
	CatalogSource carads.CatalogSource
	Listings      carads.ListingService
	Sink          carads.ListingSink
	Runs          carads.RunLogger
	RunHistory    carads.RunService
	Extractor     carads.Extractor
	Suggester     carads.Suggester
	Matcher       *levenshtein.Matcher

	// CanonicalURL reads a page's own URL from its HTML.
	CanonicalURL func(html string) string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log per-document details"`

	Import  ImportCmd  `cmd:"" help:"Import saved listing pages from a directory"`
	Catalog CatalogCmd `cmd:"" help:"Load make and model catalog from a YAML file"`
	Process ProcessCmd `cmd:"" help:"Process a batch of pending listing pages"`
	Parse   ParseCmd   `cmd:"" help:"Print the listing parsed from a single page"`
	Match   MatchCmd   `cmd:"" help:"Suggest catalog makes or models resembling text"`
	Export  ExportCmd  `cmd:"" help:"Export processed listings to an XLSX workbook"`
	Runs    RunsCmd    `cmd:"" help:"List logged processing runs"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Dir      string `arg:"" type:"existingdir" help:"Directory of saved .html pages"`
	Location string `short:"l" help:"Market the pages were scraped from"`
}

// CatalogCmd is the "catalog" subcommand.
type CatalogCmd struct {
	File string `arg:"" type:"existingfile" help:"Catalog YAML file"`
}

// ProcessCmd is the "process" subcommand.
type ProcessCmd struct {
	Limit       int    `default:"2500" env:"CARADS_LIMIT" help:"Maximum pages per batch (0 for no limit)"`
	Seed        uint64 `default:"20230806" env:"CARADS_SEED" help:"Seed for sampling large backlogs"`
	Concurrency int    `short:"c" default:"8" env:"CARADS_CONCURRENCY" help:"Pages processed at once"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	File     string `arg:"" type:"existingfile" help:"Saved listing page"`
	Location string `short:"l" help:"Market the page was scraped from"`
	Catalog  string `type:"existingfile" help:"Catalog YAML file to use instead of the database"`
}

// MatchCmd is the "match" subcommand.
type MatchCmd struct {
	Input  string `arg:"" help:"Free text to match"`
	Make   string `short:"m" help:"Match against this make's models instead of makes"`
	Cutoff int    `default:"90" help:"Minimum score (0-100)"`
	Top    int    `default:"3" help:"Matches kept per scorer"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Out        string `arg:"" help:"Output .xlsx file"`
	Make       string `short:"m" help:"Only export listings of this make"`
	Incomplete bool   `help:"Only export listings that need further parsing"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct{}
