// Package bloom deduplicates candidate page URLs with a Bloom filter.
package bloom

import (
	"net/url"
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter records which candidate URLs have been seen. URLs are normalized
// before hashing so trivial variants of one page count once.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected URLs
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a URL.
func (f *Filter) Add(rawURL string) {
	f.f.AddString(Normalize(rawURL))
}

// Test returns true if the URL might have been recorded.
// False positives are possible; false negatives are not.
func (f *Filter) Test(rawURL string) bool {
	return f.f.TestString(Normalize(rawURL))
}

// TestAndAdd records a URL and reports whether it might have been
// recorded before.
func (f *Filter) TestAndAdd(rawURL string) bool {
	return f.f.TestAndAddString(Normalize(rawURL))
}

// Normalize lower-cases the scheme and host, strips a leading "www.", the
// fragment and a trailing slash. Unparseable input is returned trimmed.
func Normalize(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	u.Fragment = ""
	u.RawFragment = ""
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawPath = strings.TrimSuffix(u.RawPath, "/")
	return u.String()
}
