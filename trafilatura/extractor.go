// Package trafilatura implements kashi.ContentExtractor with go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/kashi"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements kashi.ContentExtractor at compile time.
var _ kashi.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to isolate the main content of a lyrics
// page. Lyric blocks are short lines with little punctuation, so extraction
// favors recall and keeps tables.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback:  true,
			ExcludeComments: true,
			Focus:           trafilatura.FavorRecall,
		},
	}
}

// Extract processes raw HTML and returns the main content.
// A page with no detectable content yields an empty ContentHTML.
func (e *Extractor) Extract(rawHTML string) (*kashi.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, kashi.Errorf(kashi.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return &kashi.ExtractResult{}, nil
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &kashi.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
