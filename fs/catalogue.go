package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/archwiki"
	"gopkg.in/yaml.v2"
)

// CatalogueFile is the default name of the catalogue document.
const CatalogueFile = "pages.yml"

// Ensure CatalogueStore implements archwiki.CatalogueStore at compile time.
var _ archwiki.CatalogueStore = (*CatalogueStore)(nil)

// CatalogueStore keeps the catalogue as a single YAML document mapping
// category names to title lists.
type CatalogueStore struct {
	path string
}

// NewCatalogueStore creates a CatalogueStore backed by the file at path.
func NewCatalogueStore(path string) *CatalogueStore {
	return &CatalogueStore{path: path}
}

// Path returns the location of the catalogue document.
func (s *CatalogueStore) Path() string {
	return s.path
}

// Load reads the catalogue document. A missing document loads as an empty
// catalogue.
func (s *CatalogueStore) Load(_ context.Context) (archwiki.Catalogue, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return archwiki.Catalogue{}, nil
	}
	if err != nil {
		return nil, archwiki.Errorf(archwiki.EIO, "read catalogue: %w", err)
	}

	var catalogue archwiki.Catalogue
	if err := yaml.Unmarshal(data, &catalogue); err != nil {
		return nil, archwiki.Errorf(archwiki.ESERIALIZE, "parse catalogue %s: %v", s.path, err)
	}
	if catalogue == nil {
		catalogue = archwiki.Catalogue{}
	}
	return catalogue, nil
}

// Save replaces the catalogue document. The document is written to a
// temporary file first and renamed into place.
func (s *CatalogueStore) Save(_ context.Context, catalogue archwiki.Catalogue) error {
	data, err := yaml.Marshal(catalogue)
	if err != nil {
		return archwiki.Errorf(archwiki.ESERIALIZE, "encode catalogue: %v", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return archwiki.Errorf(archwiki.EIO, "create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".catalogue-*.tmp")
	if err != nil {
		return archwiki.Errorf(archwiki.EIO, "create temp catalogue: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return archwiki.Errorf(archwiki.EIO, "write catalogue: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return archwiki.Errorf(archwiki.EIO, "write catalogue: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return archwiki.Errorf(archwiki.EIO, "replace catalogue: %w", err)
	}
	return nil
}

// SyncedAt returns the modification time of the catalogue document, or the
// zero time if it does not exist.
func (s *CatalogueStore) SyncedAt(_ context.Context) (time.Time, error) {
	info, err := os.Stat(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, archwiki.Errorf(archwiki.EIO, "stat catalogue: %w", err)
	}
	return info.ModTime(), nil
}
