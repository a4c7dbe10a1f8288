package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/archwiki"
	main "github.com/fwojciec/archwiki/cmd/archwiki"
	"github.com/fwojciec/archwiki/crawl"
	"github.com/fwojciec/archwiki/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSyncer serves two categories; "Broken" fails to fetch.
func testSyncer() *crawl.Syncer {
	listings := map[string][]string{
		"https://wiki.archlinux.org/title/Category:Editors": {"Vim", "Emacs"},
	}
	return &crawl.Syncer{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				if url == "https://wiki.archlinux.org/title/Category:Broken" {
					return "", archwiki.Errorf(archwiki.ENETWORK, "HTTP 500")
				}
				return url, nil
			},
		},
		Parser: &mock.CatalogueParser{
			CategoryLinksFn: func(string) ([]string, error) {
				return []string{
					"/title/Table_of_contents",
					"/title/Category:Editors",
					"/title/Category:Broken",
				}, nil
			},
			MemberTitlesFn: func(html string) ([]string, error) {
				return listings[html], nil
			},
		},
		Concurrency: 2,
	}
}

func TestSyncWikiCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("saves catalogue and reports failures", func(t *testing.T) {
		t.Parallel()

		var saved archwiki.Catalogue
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Syncer: testSyncer(),
			Catalogue: &mock.CatalogueStore{
				SaveFn: func(_ context.Context, c archwiki.Catalogue) error {
					saved = c
					return nil
				},
			},
		}

		err := (&main.SyncWikiCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, archwiki.Catalogue{"Editors": {"Vim", "Emacs"}, "Broken": {}}, saved)
		assert.Contains(t, stdout.String(), "2 categories, 2 titles")
		assert.Contains(t, stdout.String(), "1 failed")
		assert.Contains(t, stderr.String(), "Syncing 2 categories")
		assert.Contains(t, stderr.String(), "failed: Broken")
	})

	t.Run("hides progress", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Syncer: testSyncer(),
			Catalogue: &mock.CatalogueStore{
				SaveFn: func(context.Context, archwiki.Catalogue) error { return nil },
			},
		}

		err := (&main.SyncWikiCmd{HideProgress: true}).Run(deps)

		require.NoError(t, err)
		assert.NotContains(t, stderr.String(), "Syncing")
	})

	t.Run("prints catalogue without saving", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Syncer: testSyncer(),
			Catalogue: &mock.CatalogueStore{
				SaveFn: func(context.Context, archwiki.Catalogue) error {
					t.Fatal("catalogue must not be saved")
					return nil
				},
			},
		}

		err := (&main.SyncWikiCmd{Print: true, HideProgress: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Broken: []\nEditors:\n- Vim\n- Emacs\n", stdout.String())
	})

	t.Run("workers flag overrides concurrency", func(t *testing.T) {
		t.Parallel()

		syncer := testSyncer()
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Syncer: syncer,
			Catalogue: &mock.CatalogueStore{
				SaveFn: func(context.Context, archwiki.Catalogue) error { return nil },
			},
		}

		require.NoError(t, (&main.SyncWikiCmd{Workers: 7, HideProgress: true}).Run(deps))

		assert.Equal(t, 7, syncer.Concurrency)
	})
}
