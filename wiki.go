package archwiki

import (
	"net/url"
	"path"
	"strings"
)

// DefaultBaseURL is the wiki the tool talks to unless configured otherwise.
const DefaultBaseURL = "https://wiki.archlinux.org"

// DefaultIndexPage lists every category of the wiki.
const DefaultIndexPage = "Table_of_contents"

// IsURL reports whether page is an absolute http(s) URL rather than a title.
func IsURL(page string) bool {
	return strings.HasPrefix(page, "https://") || strings.HasPrefix(page, "http://")
}

// PageURL returns the URL of a page. Subpage separators are kept. Pages
// that already are URLs are returned unchanged.
func PageURL(baseURL, page string) string {
	if IsURL(page) {
		return page
	}
	segments := strings.Split(strings.ReplaceAll(page, " ", "_"), "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.TrimSuffix(baseURL, "/") + "/title/" + strings.Join(segments, "/")
}

// CategoryURL resolves a category link found on the index page.
func CategoryURL(baseURL, href string) string {
	base, err := url.Parse(baseURL)
	if err != nil {
		return strings.TrimSuffix(baseURL, "/") + href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return strings.TrimSuffix(baseURL, "/") + href
	}
	return base.ResolveReference(ref).String()
}

// CategoryName derives a category name from the trailing path segment of
// its link: "/title/Category:Package_management" becomes
// "Package management".
func CategoryName(href string) string {
	p := href
	if u, err := url.Parse(href); err == nil {
		p = u.Path
	}
	name := path.Base(strings.TrimSuffix(p, "/"))
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	name = strings.TrimPrefix(name, "Category:")
	return strings.ReplaceAll(name, "_", " ")
}
