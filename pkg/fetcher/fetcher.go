// Package fetcher retrieves remote posts and distills them to title and
// article markup for analysis.
package fetcher

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
	"github.com/travissutphin/content-analyzer/pkg/caching"
)

const fetchTimeout = 30 * time.Second

// Post is the distilled article content of a fetched page.
type Post struct {
	URL     string
	Title   string
	Content string // article markup with boilerplate removed
}

// Fetcher downloads pages, optionally through a markup cache.
type Fetcher struct {
	client *http.Client
	cache  *caching.Cache
}

// NewFetcher builds a fetcher. The cache may be nil to always hit the
// network.
func NewFetcher(cache *caching.Cache) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: fetchTimeout},
		cache:  cache,
	}
}

// FetchPost downloads a page and extracts the readable article from it.
func (f *Fetcher) FetchPost(rawURL string) (*Post, error) {
	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", rawURL, err)
	}

	markup, err := f.getMarkup(rawURL)
	if err != nil {
		return nil, err
	}

	article, err := readability.FromReader(strings.NewReader(string(markup)), pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to extract article from %q: %w", rawURL, err)
	}

	return &Post{
		URL:     rawURL,
		Title:   article.Title,
		Content: article.Content,
	}, nil
}

// getMarkup returns page markup from the cache when fresh, otherwise from
// the network, populating the cache on the way out.
func (f *Fetcher) getMarkup(rawURL string) ([]byte, error) {
	if f.cache != nil {
		if data, ok := f.cache.Get(rawURL); ok {
			return data, nil
		}
	}

	resp, err := f.client.Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %q: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %q: status code %d", rawURL, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if f.cache != nil {
		if err := f.cache.Set(rawURL, data); err != nil {
			return nil, fmt.Errorf("failed to cache %q: %w", rawURL, err)
		}
	}
	return data, nil
}
