// Package readability implements kashi.ContentExtractor with go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/kashi"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements kashi.ContentExtractor at compile time.
var _ kashi.ContentExtractor = (*Extractor)(nil)

// DefaultCharThreshold is the minimum text length readability accepts as
// an article. Lyrics are far shorter than the library default of 500.
const DefaultCharThreshold = 100

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct {
	parser readability.Parser
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	parser := readability.NewParser()
	parser.CharThresholds = DefaultCharThreshold
	return &Extractor{parser: parser}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*kashi.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, kashi.Errorf(kashi.EINVALID, "empty HTML input")
	}

	article, err := e.parser.Parse(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &kashi.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
