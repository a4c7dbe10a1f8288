package main

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/fwojciec/archwiki"
	"github.com/fwojciec/archwiki/fs"
	"gopkg.in/yaml.v2"
)

// Markdown engines.
const (
	EngineBuiltin    = "builtin"
	EngineCommonMark = "commonmark"
)

// Catalogue backends.
const (
	BackendYAML   = "yaml"
	BackendSQLite = "sqlite"
)

// Config holds the user configuration. Zero fields in the config file keep
// their defaults.
type Config struct {
	BaseURL          string        `yaml:"base_url"`
	Lang             string        `yaml:"lang"`
	CacheDir         string        `yaml:"cache_dir"`
	DataDir          string        `yaml:"data_dir"`
	CacheTTL         time.Duration `yaml:"cache_ttl"`
	Timeout          time.Duration `yaml:"timeout"`
	Workers          int           `yaml:"workers"`
	RateLimit        float64       `yaml:"rate_limit"`
	MarkdownEngine   string        `yaml:"markdown_engine"`
	CatalogueBackend string        `yaml:"catalogue_backend"`
}

// DefaultConfig returns the built-in configuration. Directories are resolved
// with getenv so tests can isolate them.
func DefaultConfig(getenv func(string) string) Config {
	return Config{
		BaseURL:          archwiki.DefaultBaseURL,
		Lang:             "en",
		CacheDir:         defaultCacheDir(getenv),
		DataDir:          defaultDataDir(getenv),
		CacheTTL:         fs.DefaultTTL,
		Timeout:          30 * time.Second,
		Workers:          runtime.NumCPU(),
		MarkdownEngine:   EngineBuiltin,
		CatalogueBackend: BackendYAML,
	}
}

// LoadConfig layers the config file at path and the ARCHWIKI_CACHE_DIR and
// ARCHWIKI_DATA_DIR environment variables over the defaults. A missing file
// is not an error.
func LoadConfig(path string, getenv func(string) string) (Config, error) {
	cfg := DefaultConfig(getenv)

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, archwiki.Errorf(archwiki.EIO, "read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, archwiki.Errorf(archwiki.ESERIALIZE, "parse config %s: %v", path, err)
			}
		}
	}

	if dir := getenv("ARCHWIKI_CACHE_DIR"); dir != "" {
		cfg.CacheDir = dir
	}
	if dir := getenv("ARCHWIKI_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}

	return cfg, cfg.Validate()
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch c.MarkdownEngine {
	case EngineBuiltin, EngineCommonMark:
	default:
		return archwiki.Errorf(archwiki.EINVALID, "unknown markdown_engine %q (want %s or %s)", c.MarkdownEngine, EngineBuiltin, EngineCommonMark)
	}
	switch c.CatalogueBackend {
	case BackendYAML, BackendSQLite:
	default:
		return archwiki.Errorf(archwiki.EINVALID, "unknown catalogue_backend %q (want %s or %s)", c.CatalogueBackend, BackendYAML, BackendSQLite)
	}
	if c.Workers < 0 {
		return archwiki.Errorf(archwiki.EINVALID, "workers must not be negative")
	}
	return nil
}

// CataloguePath returns where the configured backend keeps the catalogue.
func (c Config) CataloguePath() string {
	if c.CatalogueBackend == BackendSQLite {
		return filepath.Join(c.DataDir, "catalogue.db")
	}
	return filepath.Join(c.DataDir, fs.CatalogueFile)
}

// DefaultConfigPath returns $ARCHWIKI_CONFIG or <config dir>/archwiki/config.yml.
func DefaultConfigPath(getenv func(string) string) string {
	if path := getenv("ARCHWIKI_CONFIG"); path != "" {
		return path
	}
	dir := getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "archwiki", "config.yml")
}

func defaultCacheDir(getenv func(string) string) string {
	dir := getenv("XDG_CACHE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "archwiki")
		}
		dir = filepath.Join(home, ".cache")
	}
	return filepath.Join(dir, "archwiki")
}

func defaultDataDir(getenv func(string) string) string {
	dir := getenv("XDG_DATA_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "archwiki")
		}
		dir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dir, "archwiki")
}
