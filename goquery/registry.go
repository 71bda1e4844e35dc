package goquery

import (
	"net/url"
	"sort"
	"strings"

	"github.com/fwojciec/kashi"
)

var _ kashi.ExtractorRegistry = (*Registry)(nil)

// Registry manages site-specific lyrics extractors keyed by host. Sites
// that need their own keyword tuning register a dedicated extractor; every
// other page uses the fallback extractor.
type Registry struct {
	fallback   kashi.LyricsExtractor
	extractors map[string]kashi.LyricsExtractor
}

// NewRegistry creates a new Registry with the given fallback extractor.
func NewRegistry(fallback kashi.LyricsExtractor) *Registry {
	return &Registry{
		fallback:   fallback,
		extractors: make(map[string]kashi.LyricsExtractor),
	}
}

// Get returns the extractor registered for host.
// Returns nil if no extractor is registered for the host.
func (r *Registry) Get(host string) kashi.LyricsExtractor {
	return r.extractors[normalizeHost(host)]
}

// GetForURL returns the extractor for the URL's host, falling back to the
// fallback extractor when the URL is invalid or the host is unregistered.
func (r *Registry) GetForURL(rawURL string) kashi.LyricsExtractor {
	u, err := url.Parse(rawURL)
	if err != nil {
		return r.fallback
	}
	if e, ok := r.extractors[normalizeHost(u.Hostname())]; ok {
		return e
	}
	return r.fallback
}

// Register adds an extractor for a host.
// If an extractor is already registered for the host, it is replaced.
func (r *Registry) Register(host string, extractor kashi.LyricsExtractor) {
	r.extractors[normalizeHost(host)] = extractor
}

// List returns all registered hosts in sorted order.
func (r *Registry) List() []string {
	hosts := make([]string, 0, len(r.extractors))
	for h := range r.extractors {
		hosts = append(hosts, h)
	}
	sort.Strings(hosts)
	return hosts
}

// normalizeHost lower-cases host and strips a leading "www.".
func normalizeHost(host string) string {
	return strings.TrimPrefix(strings.ToLower(host), "www.")
}
