package goquery

import (
	"strings"

	"github.com/fwojciec/kashi"
)

// Ensure FallbackExtractor implements kashi.LyricsExtractor at compile time.
var _ kashi.LyricsExtractor = (*FallbackExtractor)(nil)

// FallbackExtractor isolates a page's main content with a generic content
// extractor, then reconstructs lyric lines from all of it. It serves pages
// whose layout none of the locator strategies recognize.
type FallbackExtractor struct {
	content       kashi.ContentExtractor
	reconstructor *Reconstructor
}

// NewFallbackExtractor creates a FallbackExtractor.
func NewFallbackExtractor(content kashi.ContentExtractor, kw kashi.Keywords) *FallbackExtractor {
	return &FallbackExtractor{
		content:       content,
		reconstructor: NewReconstructor(kw),
	}
}

// ExtractLyrics returns the lyric lines in the page's main content.
// Returns nil lines and a nil error when the content holds no lyrics.
func (e *FallbackExtractor) ExtractLyrics(html string) ([]string, error) {
	if strings.TrimSpace(html) == "" {
		return nil, nil
	}

	result, err := e.content.Extract(html)
	if err != nil {
		return nil, err
	}
	if result == nil || strings.TrimSpace(result.ContentHTML) == "" {
		return nil, nil
	}

	doc, err := parseHTML(strings.NewReader(result.ContentHTML))
	if err != nil {
		return nil, err
	}
	return e.reconstructor.Reconstruct(doc.Selection), nil
}
