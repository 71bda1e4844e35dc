package kashi

import (
	"context"
	"net/url"
	"strings"
)

// Site is a lyrics website that can be searched for a song title.
type Site struct {
	Name string
	Host string

	// MaxResults caps how many result URLs are kept for this site.
	MaxResults int
}

// DefaultSites returns the searched sites in preference order. Lyrical
// Nonsense is the primary source; the rest are anime and J-pop alternatives.
func DefaultSites() []Site {
	return []Site{
		{Name: "lyrical_nonsense", Host: "lyrical-nonsense.com", MaxResults: 3},
		{Name: "jpopasia", Host: "jpopasia.com", MaxResults: 2},
		{Name: "musixmatch", Host: "musixmatch.com", MaxResults: 2},
		{Name: "lyricstranslate", Host: "lyricstranslate.com", MaxResults: 2},
		{Name: "utaten", Host: "utaten.com", MaxResults: 2},
		{Name: "petitlyrics", Host: "petitlyrics.com", MaxResults: 2},
	}
}

// Query returns the web search query for title restricted to the site.
func (s Site) Query(title string) string {
	return "site:" + s.Host + ` "` + title + `"`
}

// Matches reports whether rawURL belongs to the site.
func (s Site) Matches(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	return host == s.Host || strings.HasSuffix(host, "."+s.Host)
}

// Source is a candidate page that may contain the lyrics for a song.
type Source struct {
	URL  string
	Site string
}

// SourceFinder discovers candidate lyrics pages for a song title.
type SourceFinder interface {
	// FindSources returns candidate pages in preference order.
	// An empty result with a nil error means no candidates were found.
	FindSources(ctx context.Context, title string) ([]Source, error)
}
