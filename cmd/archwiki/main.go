package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/fwojciec/archwiki"
	"github.com/fwojciec/archwiki/crawl"
	"github.com/fwojciec/archwiki/fs"
	"github.com/fwojciec/archwiki/goquery"
	"github.com/fwojciec/archwiki/htmltomarkdown"
	wikihttp "github.com/fwojciec/archwiki/http"
	"github.com/fwojciec/archwiki/reader"
	wikislog "github.com/fwojciec/archwiki/slog"
	"github.com/fwojciec/archwiki/sqlite"
	"github.com/fwojciec/archwiki/strutil"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorText(err))
	}
	stop()
	os.Exit(ExitCode(err))
}

// ExitCode maps an error to the process exit status: 0 on success, 2 when a
// page was not found and 1 otherwise.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case archwiki.ErrorCode(err) == archwiki.ENOTFOUND:
		return 2
	default:
		return 1
	}
}

func errorText(err error) string {
	if archwiki.ErrorCode(err) == archwiki.EINTERNAL {
		return "error: " + err.Error()
	}
	return "error: " + archwiki.ErrorMessage(err)
}

// Main represents the program.
type Main struct {
	// ConfigPath overrides the default config file location. The --config
	// flag takes precedence.
	ConfigPath string

	// Getenv looks up environment variables.
	Getenv func(string) string

	// Color enables terminal colors in plain output.
	Color bool

	// SQLite database, when the sqlite catalogue backend is configured.
	DB *sqlite.DB

	Fetcher *wikihttp.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Getenv: os.Getenv,
		Color:  !color.NoColor,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		_ = m.Fetcher.Close()
		m.Fetcher = nil
	}
	if m.DB != nil {
		err := m.DB.Close()
		m.DB = nil
		return err
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
		kong.Name("archwiki"),
		kong.Description("Read and search the Arch Linux wiki from the terminal."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'archwiki --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	getenv := m.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	path := cli.Config
	if path == "" {
		path = m.ConfigPath
	}
	if path == "" {
		path = DefaultConfigPath(getenv)
	}
	cfg, err := LoadConfig(path, getenv)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: check the config file at %s\n", path)
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger
	deps.Config = cfg

	if m.Color {
		cyan := color.New(color.FgCyan)
		cyan.EnableColor()
		deps.Highlight = func(s string) string { return cyan.Sprint(s) }
	}

	m.Fetcher = wikihttp.NewFetcher(wikihttp.WithTimeout(cfg.Timeout))
	defer m.Close()
	fetcher := wikislog.NewLoggingFetcher(m.Fetcher, logger)

	api := wikihttp.NewAPIClient(cfg.BaseURL, m.Fetcher.Client())
	deps.Search = wikislog.NewLoggingSearchService(api, logger)
	deps.Languages = api

	switch cmd {
	case "search", "list-languages":
	default:
		store, err := m.openCatalogue(cfg)
		if err != nil {
			return err
		}
		deps.Catalogue = wikislog.NewLoggingCatalogueStore(store, logger)
	}

	switch cmd {
	case "read-page":
		deps.Reader = m.newReader(ctx, cfg, &cli.ReadPage, deps, fetcher)
	case "sync-wiki":
		deps.Syncer = &crawl.Syncer{
			Fetcher:     fetcher,
			Parser:      goquery.NewCatalogueParser(),
			RateLimiter: crawl.NewDomainLimiter(cfg.RateLimit),
			BaseURL:     cfg.BaseURL,
			Concurrency: cfg.Workers,
		}
	}

	return kongCtx.Run(deps)
}

func (m *Main) openCatalogue(cfg Config) (archwiki.CatalogueStore, error) {
	if cfg.CatalogueBackend != BackendSQLite {
		return fs.NewCatalogueStore(cfg.CataloguePath()), nil
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, archwiki.Errorf(archwiki.EIO, "create data directory: %w", err)
	}
	m.DB = sqlite.NewDB(cfg.CataloguePath())
	if err := m.DB.Open(); err != nil {
		m.DB = nil
		return nil, archwiki.Errorf(archwiki.EIO, "open catalogue database at %q: %w", cfg.CataloguePath(), err)
	}
	return sqlite.NewCatalogueStore(m.DB), nil
}

func (m *Main) newReader(ctx context.Context, cfg Config, c *ReadPageCmd, deps *Dependencies, fetcher archwiki.Fetcher) *reader.Reader {
	var converter archwiki.Converter = goquery.NewConverter()
	if cfg.MarkdownEngine == EngineCommonMark {
		converter = htmltomarkdown.NewConverter(converter)
	}

	var opts []fs.CacheOption
	if c.DisableCacheInvalidation {
		opts = append(opts, fs.WithoutInvalidation())
	}
	cache := wikislog.NewLoggingPageCache(fs.NewPageCache(cfg.CacheDir, cfg.CacheTTL, opts...), deps.Logger)

	catalogue, err := deps.Catalogue.Load(ctx)
	if err != nil {
		deps.Logger.Warn("catalogue unavailable, suggestions disabled", "err", err)
		catalogue = archwiki.Catalogue{}
	}

	return &reader.Reader{
		Fetcher:      fetcher,
		Converter:    converter,
		Cache:        cache,
		Searcher:     deps.Search,
		Suggester:    strutil.NewSuggester(),
		Catalogue:    catalogue,
		BaseURL:      cfg.BaseURL,
		Lang:         cfg.Lang,
		NoCacheWrite: c.NoCacheWrite,
	}
}
