package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/fwojciec/archwiki"
)

// Ensure APIClient implements the archwiki API services at compile time.
var (
	_ archwiki.SearchService   = (*APIClient)(nil)
	_ archwiki.LanguageService = (*APIClient)(nil)
)

// APIClient queries the MediaWiki action API at {baseURL}/api.php.
type APIClient struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// NewAPIClient creates an APIClient for the wiki at baseURL.
// If client is nil, http.DefaultClient is used.
func NewAPIClient(baseURL string, client *http.Client) *APIClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &APIClient{
		client:    client,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		userAgent: DefaultUserAgent,
	}
}

// OpenSearch returns the positional open search response for query.
func (c *APIClient) OpenSearch(ctx context.Context, query, lang string, limit int) ([]archwiki.OpenSearchItem, error) {
	params := url.Values{
		"action":  {"opensearch"},
		"format":  {"json"},
		"search":  {query},
		"limit":   {strconv.Itoa(limit)},
		"uselang": {lang},
	}

	var resp []archwiki.OpenSearchItem
	if err := c.getJSON(ctx, params, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

type textSearchResponse struct {
	Query struct {
		Search []archwiki.TextSearchItem `json:"search"`
	} `json:"query"`
}

// TextSearch returns full-text hits for query. Snippets are HTML.
func (c *APIClient) TextSearch(ctx context.Context, query, lang string, limit int) ([]archwiki.TextSearchItem, error) {
	params := url.Values{
		"action":   {"query"},
		"list":     {"search"},
		"format":   {"json"},
		"srwhat":   {"text"},
		"srsearch": {query},
		"srlimit":  {strconv.Itoa(limit)},
		"uselang":  {lang},
	}

	var resp textSearchResponse
	if err := c.getJSON(ctx, params, &resp); err != nil {
		return nil, err
	}
	if resp.Query.Search == nil {
		return []archwiki.TextSearchItem{}, nil
	}
	return resp.Query.Search, nil
}

type languagesResponse struct {
	Query struct {
		Languages []archwiki.Language `json:"languages"`
	} `json:"query"`
}

// Languages returns the interface languages the wiki supports.
func (c *APIClient) Languages(ctx context.Context) ([]archwiki.Language, error) {
	params := url.Values{
		"action":        {"query"},
		"meta":          {"siteinfo"},
		"siprop":        {"languages"},
		"format":        {"json"},
		"formatversion": {"2"},
	}

	var resp languagesResponse
	if err := c.getJSON(ctx, params, &resp); err != nil {
		return nil, err
	}
	return resp.Query.Languages, nil
}

func (c *APIClient) getJSON(ctx context.Context, params url.Values, v any) error {
	endpoint := c.baseURL + "/api.php?" + params.Encode()
	body, err := get(ctx, c.client, endpoint, c.userAgent)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		if archwiki.ErrorCode(err) == archwiki.EMALFORMED {
			return err
		}
		return archwiki.Errorf(archwiki.EMALFORMED, "decode %s response: %v", params.Get("action"), err)
	}
	return nil
}
