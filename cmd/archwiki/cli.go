package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/archwiki"
	"github.com/fwojciec/archwiki/crawl"
	"github.com/fwojciec/archwiki/reader"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Config    Config
	Reader    *reader.Reader
	Search    archwiki.SearchService
	Languages archwiki.LanguageService
	Catalogue archwiki.CatalogueStore
	Syncer    *crawl.Syncer

	// Highlight decorates URLs and search matches in plain output.
	// Nil leaves text unstyled.
	Highlight func(string) string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Log debug output to stderr"`
	Config  string `type:"path" placeholder:"FILE" help:"Config file (default $ARCHWIKI_CONFIG or <config dir>/archwiki/config.yml)"`

	ReadPage       ReadPageCmd       `cmd:"" help:"Read a page from the ArchWiki"`
	Search         SearchCmd         `cmd:"" help:"Search the ArchWiki"`
	ListPages      ListPagesCmd      `cmd:"" help:"List pages from the local catalogue"`
	ListCategories ListCategoriesCmd `cmd:"" help:"List categories from the local catalogue"`
	ListLanguages  ListLanguagesCmd  `cmd:"" help:"List the languages the wiki supports"`
	SyncWiki       SyncWikiCmd       `cmd:"" help:"Download the page catalogue"`
	Info           InfoCmd           `cmd:"" help:"Show storage locations and sync status"`
}

// ReadPageCmd is the "read-page" subcommand.
type ReadPageCmd struct {
	Page                     string `arg:"" help:"Page title or URL"`
	Format                   string `short:"f" default:"plain-text" enum:"plain-text,markdown,html" help:"Output format (plain-text, markdown, html)"`
	ShowURLs                 bool   `name:"show-urls" short:"u" help:"Show link targets"`
	IgnoreCache              bool   `short:"i" help:"Always fetch the page"`
	DisableCacheInvalidation bool   `short:"d" help:"Reuse cached pages regardless of age"`
	NoCacheWrite             bool   `short:"n" help:"Do not store the fetched page"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query   string `arg:"" help:"Search query"`
	Lang    string `short:"l" help:"Wiki language code (default from config)"`
	Limit   int    `short:"L" default:"10" help:"Maximum number of results"`
	Text    bool   `short:"t" help:"Search page contents instead of titles"`
	JSON    bool   `name:"json" short:"j" help:"Print results as indented JSON"`
	JSONRaw bool   `name:"json-raw" help:"Print results as compact JSON"`
}

// ListPagesCmd is the "list-pages" subcommand.
type ListPagesCmd struct {
	Categories []string `short:"c" sep:"," help:"Only list pages in these categories"`
	Flatten    bool     `short:"f" help:"Print a flat sorted title list"`
}

// ListCategoriesCmd is the "list-categories" subcommand.
type ListCategoriesCmd struct{}

// ListLanguagesCmd is the "list-languages" subcommand.
type ListLanguagesCmd struct{}

// SyncWikiCmd is the "sync-wiki" subcommand.
type SyncWikiCmd struct {
	HideProgress bool `short:"H" help:"Do not report per-category progress"`
	Print        bool `short:"p" help:"Print the catalogue instead of saving it"`
	Workers      int  `short:"w" help:"Concurrent category fetches (default from config)"`
}

// InfoCmd is the "info" subcommand.
type InfoCmd struct{}
