package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/carads"
	"github.com/fwojciec/carads/goquery"
	"github.com/fwojciec/carads/levenshtein"
	carslog "github.com/fwojciec/carads/slog"
	"github.com/fwojciec/carads/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// A missing .env file is fine: the environment is used as is.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: failed to load .env: %v\n", err)
	}

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("carads"),
		kong.Description("Turn saved vehicle classified-ad pages into normalized listings."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'carads --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set CARADS_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	documents := sqlite.NewRawDocumentService(m.DB)
	catalog := sqlite.NewCatalogService(m.DB)
	listings := sqlite.NewListingService(m.DB)
	runs := sqlite.NewRunService(m.DB)

	deps.Documents = documents
	deps.Feed = carslog.NewLoggingDocumentFeed(documents, deps.Logger)
	deps.Catalog = catalog
	deps.CatalogSource = carslog.NewLoggingCatalogSource(catalog, deps.Logger)
	deps.Listings = listings
	deps.Sink = carslog.NewLoggingListingSink(listings, deps.Logger)
	deps.Runs = carslog.NewLoggingRunLogger(runs, deps.Logger)
	deps.RunHistory = runs
	deps.Extractor = carslog.NewLoggingExtractor(goquery.NewExtractor(), deps.Logger)
	deps.Matcher = levenshtein.NewMatcher()
	deps.Suggester = deps.Matcher
	deps.CanonicalURL = goquery.CanonicalURL

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("CARADS_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "carads.db"
	}
	dir := filepath.Join(home, ".carads")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "carads.db")
}

// errorf reports a command failure on stderr and returns err unchanged.
func errorf(deps *Dependencies, err error) error {
	fmt.Fprintf(deps.Stderr, "error: %s\n", carads.ErrorMessage(err))
	return err
}
