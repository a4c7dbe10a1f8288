package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/archwiki"
	wikihttp "github.com/fwojciec/archwiki/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIClient_OpenSearch(t *testing.T) {
	t.Parallel()

	t.Run("decodes positional response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api.php", r.URL.Path)
			q := r.URL.Query()
			assert.Equal(t, "opensearch", q.Get("action"))
			assert.Equal(t, "pacman", q.Get("search"))
			assert.Equal(t, "5", q.Get("limit"))
			assert.Equal(t, "de", q.Get("uselang"))
			_, _ = w.Write([]byte(`["pacman",["Pacman","Pacman/Tips and tricks"],["",""],["https://wiki.archlinux.org/title/Pacman","https://wiki.archlinux.org/title/Pacman/Tips_and_tricks"]]`))
		}))
		defer server.Close()

		client := wikihttp.NewAPIClient(server.URL+"/", nil)
		resp, err := client.OpenSearch(context.Background(), "pacman", "de", 5)

		require.NoError(t, err)
		results, err := archwiki.ParseOpenSearch(resp)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "Pacman/Tips and tricks", results[1].Title)
		assert.Equal(t, "https://wiki.archlinux.org/title/Pacman/Tips_and_tricks", results[1].URL)
	})

	t.Run("returns malformed error for unexpected shape", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error":"nope"}`))
		}))
		defer server.Close()

		_, err := wikihttp.NewAPIClient(server.URL, nil).OpenSearch(context.Background(), "x", "en", 5)

		assert.Equal(t, archwiki.EMALFORMED, archwiki.ErrorCode(err))
	})

	t.Run("returns network error for failed request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := wikihttp.NewAPIClient(server.URL, nil).OpenSearch(context.Background(), "x", "en", 5)

		assert.Equal(t, archwiki.ENETWORK, archwiki.ErrorCode(err))
	})
}

func TestAPIClient_TextSearch(t *testing.T) {
	t.Parallel()

	t.Run("decodes search hits", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "search", q.Get("list"))
			assert.Equal(t, "text", q.Get("srwhat"))
			assert.Equal(t, "kernel", q.Get("srsearch"))
			_, _ = w.Write([]byte(`{"batchcomplete":"","query":{"searchinfo":{"totalhits":2},"search":[
				{"ns":0,"title":"Kernel","pageid":1,"snippet":"The <span class=\"searchmatch\">kernel</span>"},
				{"ns":0,"title":"Kernel parameters","pageid":2,"snippet":"boot"}]}}`))
		}))
		defer server.Close()

		items, err := wikihttp.NewAPIClient(server.URL, nil).TextSearch(context.Background(), "kernel", "en", 10)

		require.NoError(t, err)
		assert.Equal(t, []archwiki.TextSearchItem{
			{Title: "Kernel", Snippet: `The <span class="searchmatch">kernel</span>`},
			{Title: "Kernel parameters", Snippet: "boot"},
		}, items)
	})

	t.Run("returns empty list without hits", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"query":{}}`))
		}))
		defer server.Close()

		items, err := wikihttp.NewAPIClient(server.URL, nil).TextSearch(context.Background(), "zzz", "en", 10)

		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}

func TestAPIClient_Languages(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "siteinfo", r.URL.Query().Get("meta"))
		_, _ = w.Write([]byte(`{"batchcomplete":true,"query":{"languages":[{"code":"de","bcp47":"de","name":"Deutsch"},{"code":"en","bcp47":"en","name":"English"}]}}`))
	}))
	defer server.Close()

	langs, err := wikihttp.NewAPIClient(server.URL, nil).Languages(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []archwiki.Language{{Code: "de", Name: "Deutsch"}, {Code: "en", Name: "English"}}, langs)
}
