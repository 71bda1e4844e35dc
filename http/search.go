package http

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/kashi"
	"github.com/fwojciec/kashi/bloom"
)

// DefaultSearchURL is DuckDuckGo's JavaScript-free results endpoint.
const DefaultSearchURL = "https://html.duckduckgo.com/html/"

// Ensure SearchService implements kashi.SourceFinder at compile time.
var _ kashi.SourceFinder = (*SearchService)(nil)

// SearchService discovers candidate lyrics pages by running one
// site-restricted web search per lyrics site.
type SearchService struct {
	client    *http.Client
	baseURL   string
	userAgent string
	sites     []kashi.Site
}

// SearchOption configures a SearchService.
type SearchOption func(*SearchService)

// WithSearchURL sets the search endpoint. Used by tests.
func WithSearchURL(u string) SearchOption {
	return func(s *SearchService) {
		s.baseURL = u
	}
}

// WithSites sets the searched sites, in preference order.
func WithSites(sites []kashi.Site) SearchOption {
	return func(s *SearchService) {
		s.sites = sites
	}
}

// WithHTTPClient sets the HTTP client used for search requests.
func WithHTTPClient(c *http.Client) SearchOption {
	return func(s *SearchService) {
		s.client = c
	}
}

// NewSearchService creates a SearchService over kashi.DefaultSites.
func NewSearchService(opts ...SearchOption) *SearchService {
	s := &SearchService{
		client:    &http.Client{Timeout: DefaultFetchTimeout},
		baseURL:   DefaultSearchURL,
		userAgent: DefaultUserAgent,
		sites:     kashi.DefaultSites(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FindSources searches every site for title and returns matching pages in
// site preference order. A failed search for one site is skipped; an
// error is returned only when every search failed.
func (s *SearchService) FindSources(ctx context.Context, title string) ([]kashi.Source, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, kashi.Errorf(kashi.EINVALID, "title required")
	}

	seen := bloom.NewFilter(100, 0.001)
	var sources []kashi.Source
	var failures int
	var lastErr error

	for _, site := range s.sites {
		urls, err := s.Search(ctx, site.Query(title))
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			failures++
			lastErr = err
			continue
		}

		kept := 0
		for _, u := range urls {
			if site.MaxResults > 0 && kept >= site.MaxResults {
				break
			}
			if !site.Matches(u) || seen.TestAndAdd(u) {
				continue
			}
			sources = append(sources, kashi.Source{URL: u, Site: site.Name})
			kept++
		}
	}

	if len(s.sites) > 0 && failures == len(s.sites) {
		return nil, fmt.Errorf("all searches failed: %w", lastErr)
	}
	return sources, nil
}

// Search runs one query and returns the result URLs in rank order.
func (s *SearchService) Search(ctx context.Context, query string) ([]string, error) {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return nil, kashi.Errorf(kashi.EINVALID, "invalid search URL: %v", err)
	}
	q := u.Query()
	q.Set("q", query)
	u.RawQuery = q.Encode()

	req, err := newPageRequest(ctx, u.String(), s.userAgent)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, s.baseURL); err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse search results: %w", err)
	}

	var urls []string
	doc.Find("a.result__a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		if target := resultURL(href); target != "" {
			urls = append(urls, target)
		}
	})
	return urls, nil
}

// resultURL returns the destination of a search result link. Result links
// usually point at a redirect whose uddg parameter holds the target.
func resultURL(href string) string {
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	if u.Scheme == "http" || u.Scheme == "https" {
		return href
	}
	return ""
}
