package kashi

import (
	"regexp"
	"strings"
	"unicode"
)

// markerRe matches a numeric line marker such as "7." at the start of a line.
// Two digits at most, so line numbers above 99 are not recognized.
var markerRe = regexp.MustCompile(`^\d{1,2}\.`)

// IsMarker reports whether line starts with a numeric lyric marker (1-99).
func IsMarker(line string) bool {
	return markerRe.MatchString(line)
}

// SplitMarker splits a lyric line into its marker and trimmed content.
// The marker is empty when the line does not start with one.
func SplitMarker(line string) (marker, content string) {
	loc := markerRe.FindStringIndex(line)
	if loc == nil {
		return "", strings.TrimSpace(line)
	}
	return line[:loc[1]], strings.TrimSpace(line[loc[1]:])
}

// FormatLyrics joins lyric lines into the plain-text result.
func FormatLyrics(lines []string) string {
	return strings.Join(lines, "\n")
}

// ContainsJapanese reports whether s contains kanji, hiragana or katakana.
func ContainsJapanese(s string) bool {
	for _, r := range s {
		if unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana) {
			return true
		}
	}
	return false
}

// Keywords holds the site-specific tuning lists consumed by the extraction
// engine. Matching is a case-insensitive substring test.
type Keywords struct {
	// Header marks section headings ("Lyrics", "Romaji") that precede content.
	Header []string `yaml:"header" json:"header"`

	// Boilerplate marks page furniture (navigation, attribution, calls to
	// action) that ends the lyrics block.
	Boilerplate []string `yaml:"boilerplate" json:"boilerplate"`

	// Indicator marks containers that likely hold lyrics.
	Indicator []string `yaml:"indicator" json:"indicator"`
}

// DefaultKeywords returns the keyword lists tuned for Lyrical Nonsense pages.
func DefaultKeywords() Keywords {
	return Keywords{
		Header:    []string{"lyrics", "歌詞", "romaji", "romanized"},
		Indicator: []string{"lyrics", "歌詞", "romaji", "romanized"},
		Boilerplate: []string{
			"favorite",
			"view favorites",
			"copy link",
			"artist:",
			"tie-in:",
			"status",
			"comments",
			"transliterated by:",
			"join our",
			"send me a coffee",
			"home",
			"artists",
			"series",
			"reviews",
			"support ln",
			"about",
			"join us",
			"submit",
			"video",
			"related",
		},
	}
}

// Validate returns an error if any keyword is blank. A blank keyword would
// match every line.
func (k *Keywords) Validate() error {
	lists := map[string][]string{
		"header":      k.Header,
		"boilerplate": k.Boilerplate,
		"indicator":   k.Indicator,
	}
	for name, list := range lists {
		for _, kw := range list {
			if strings.TrimSpace(kw) == "" {
				return Errorf(EINVALID, "blank %s keyword", name)
			}
		}
	}
	return nil
}

// IsHeader reports whether line contains a header keyword.
func (k *Keywords) IsHeader(line string) bool {
	return containsAny(strings.ToLower(line), k.Header)
}

// IsBoilerplate reports whether line contains a boilerplate keyword.
func (k *Keywords) IsBoilerplate(line string) bool {
	return containsAny(strings.ToLower(line), k.Boilerplate)
}

// HasIndicator reports whether text contains a lyrics-indicator keyword.
func (k *Keywords) HasIndicator(text string) bool {
	return containsAny(strings.ToLower(text), k.Indicator)
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// LyricsExtractor turns a page into ordered lyric lines.
type LyricsExtractor interface {
	// ExtractLyrics parses raw HTML and returns the numbered lyric lines in
	// document order. Returns nil lines and a nil error when the page holds
	// no recognizable lyrics, which includes blank or malformed input.
	ExtractLyrics(html string) ([]string, error)
}

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// ContentExtractor isolates the main content of an HTML page. It backs the
// fallback path when no lyrics container can be located directly.
type ContentExtractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}

// ExtractorRegistry selects a site-tuned LyricsExtractor for a page URL.
type ExtractorRegistry interface {
	// GetForURL returns the extractor registered for the URL's host, or
	// the default extractor when none is registered.
	GetForURL(rawURL string) LyricsExtractor
}
