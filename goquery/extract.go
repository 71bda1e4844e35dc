package goquery

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/kashi"
)

// Ensure Extractor implements kashi.LyricsExtractor at compile time.
var _ kashi.LyricsExtractor = (*Extractor)(nil)

// Extractor is the lyrics extraction engine: it locates the lyrics
// container in a page and reconstructs its numbered lines.
// Extractor performs no I/O and is safe for concurrent use.
type Extractor struct {
	locator       *Locator
	reconstructor *Reconstructor
}

// NewExtractor creates an Extractor with the default strategy chain.
func NewExtractor(kw kashi.Keywords) *Extractor {
	return NewExtractorWithLocator(NewLocator(DefaultStrategies(kw)...), kw)
}

// NewSiteExtractor creates an Extractor for a site whose lyrics live in a
// known container. The site selectors are tried before the default chain.
func NewSiteExtractor(kw kashi.Keywords, selectors ...string) *Extractor {
	strategies := append([]Strategy{&MarkedContainerStrategy{Selectors: selectors}}, DefaultStrategies(kw)...)
	return NewExtractorWithLocator(NewLocator(strategies...), kw)
}

// NewExtractorWithLocator creates an Extractor with a custom Locator.
func NewExtractorWithLocator(locator *Locator, kw kashi.Keywords) *Extractor {
	return &Extractor{
		locator:       locator,
		reconstructor: NewReconstructor(kw),
	}
}

// ExtractLyrics parses raw HTML and returns the lyric lines.
// Returns nil lines and a nil error when no lyrics are recognized or the
// input is blank. Returns EINVALID when the input cannot be parsed.
func (e *Extractor) ExtractLyrics(html string) ([]string, error) {
	if strings.TrimSpace(html) == "" {
		return nil, nil
	}
	doc, err := parseHTML(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	return e.ExtractFromDocument(doc)
}

// ExtractFromDocument runs the engine over an already parsed document.
// Returns EINVALID for a nil document.
func (e *Extractor) ExtractFromDocument(doc *goquery.Document) ([]string, error) {
	if doc == nil {
		return nil, kashi.Errorf(kashi.EINVALID, "document required")
	}
	sel := e.locator.Locate(doc)
	if sel == nil {
		return nil, nil
	}
	return e.reconstructor.Reconstruct(sel), nil
}

// parseHTML parses an HTML document. Returns EINVALID if parsing fails.
func parseHTML(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, kashi.Errorf(kashi.EINVALID, "parse HTML: %v", err)
	}
	return doc, nil
}
