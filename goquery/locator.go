package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/kashi"
)

// Strategy is one way of finding the lyrics container in a page.
type Strategy interface {
	// Name returns the strategy's identifier for logging.
	Name() string

	// Locate returns the matching container, or nil if the strategy
	// does not apply to the document.
	Locate(doc *goquery.Document) *goquery.Selection
}

// Locator finds the element most likely to hold the lyrics block by trying
// strategies in priority order. The first strategy with a result wins.
// Locator holds no mutable state and is safe for concurrent use.
type Locator struct {
	strategies []Strategy
}

// NewLocator creates a Locator that tries strategies in the given order.
func NewLocator(strategies ...Strategy) *Locator {
	return &Locator{strategies: strategies}
}

// DefaultStrategies returns the standard strategy chain:
// marked container, primary content, numbered markers, indicator keywords.
func DefaultStrategies(kw kashi.Keywords) []Strategy {
	return []Strategy{
		NewMarkedContainerStrategy(),
		NewPrimaryContentStrategy(),
		NewNumberedMarkersStrategy(),
		NewIndicatorStrategy(kw),
	}
}

// Locate returns the lyrics container, or nil if no strategy matched.
func (l *Locator) Locate(doc *goquery.Document) *goquery.Selection {
	sel, _ := l.LocateWithStrategy(doc)
	return sel
}

// LocateWithStrategy is like Locate but also returns the name of the
// strategy that matched. The name is empty when nothing matched.
func (l *Locator) LocateWithStrategy(doc *goquery.Document) (*goquery.Selection, string) {
	if doc == nil {
		return nil, ""
	}
	for _, s := range l.strategies {
		if sel := s.Locate(doc); sel != nil && sel.Length() > 0 {
			return sel, s.Name()
		}
	}
	return nil, ""
}

// MarkedContainerStrategy finds an element explicitly marked as the lyrics
// container by its class or id.
type MarkedContainerStrategy struct {
	Selectors []string
}

// NewMarkedContainerStrategy creates a MarkedContainerStrategy matching a
// "lyrics" class or id, preferring div elements.
func NewMarkedContainerStrategy() *MarkedContainerStrategy {
	return &MarkedContainerStrategy{
		Selectors: []string{"div.lyrics", "div#lyrics", ".lyrics", "#lyrics"},
	}
}

// Name returns the strategy's identifier.
func (s *MarkedContainerStrategy) Name() string {
	return "marked"
}

// Locate returns the first element matching the selectors, tried in order.
func (s *MarkedContainerStrategy) Locate(doc *goquery.Document) *goquery.Selection {
	for _, selector := range s.Selectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	return nil
}

// PrimaryContentStrategy finds the page's semantic main content region.
type PrimaryContentStrategy struct{}

// NewPrimaryContentStrategy creates a new PrimaryContentStrategy.
func NewPrimaryContentStrategy() *PrimaryContentStrategy {
	return &PrimaryContentStrategy{}
}

// Name returns the strategy's identifier.
func (s *PrimaryContentStrategy) Name() string {
	return "primary"
}

// Locate returns the first main element, falling back to the first article.
func (s *PrimaryContentStrategy) Locate(doc *goquery.Document) *goquery.Selection {
	if sel := doc.Find("main").First(); sel.Length() > 0 {
		return sel
	}
	if sel := doc.Find("article").First(); sel.Length() > 0 {
		return sel
	}
	return nil
}

// Default bounds for NumberedMarkersStrategy, in characters.
const (
	DefaultMinContainerLength = 100
	DefaultMaxContainerLength = 10000
)

// NumberedMarkersStrategy finds a container whose text carries several
// numeric line markers. The length bounds reject trivial snippets and
// whole-page wrappers.
type NumberedMarkersStrategy struct {
	Selector  string
	Markers   []string
	MinLength int
	MaxLength int
}

// NewNumberedMarkersStrategy creates a NumberedMarkersStrategy that looks
// for div elements containing "1.", "2." and "3." with between 100 and
// 10,000 characters of text (exclusive).
func NewNumberedMarkersStrategy() *NumberedMarkersStrategy {
	return &NumberedMarkersStrategy{
		Selector:  "div",
		Markers:   []string{"1.", "2.", "3."},
		MinLength: DefaultMinContainerLength,
		MaxLength: DefaultMaxContainerLength,
	}
}

// Name returns the strategy's identifier.
func (s *NumberedMarkersStrategy) Name() string {
	return "numbered"
}

// Locate returns the first element in document order that satisfies both
// the marker and the length conditions.
func (s *NumberedMarkersStrategy) Locate(doc *goquery.Document) *goquery.Selection {
	var found *goquery.Selection
	doc.Find(s.Selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := Text(sel)
		for _, m := range s.Markers {
			if !strings.Contains(text, m) {
				return true
			}
		}
		if n := runeLen(text); n <= s.MinLength || n >= s.MaxLength {
			return true
		}
		found = sel
		return false
	})
	return found
}

// IndicatorStrategy finds a container that mentions lyrics (by keyword)
// and carries at least one low-numbered marker.
type IndicatorStrategy struct {
	Selector  string
	Keywords  kashi.Keywords
	MaxMarker int
}

// NewIndicatorStrategy creates an IndicatorStrategy over div elements that
// accepts markers "1." through "10.".
func NewIndicatorStrategy(kw kashi.Keywords) *IndicatorStrategy {
	return &IndicatorStrategy{
		Selector:  "div",
		Keywords:  kw,
		MaxMarker: 10,
	}
}

// Name returns the strategy's identifier.
func (s *IndicatorStrategy) Name() string {
	return "indicator"
}

// Locate returns the first element in document order with an indicator
// keyword and a marker.
func (s *IndicatorStrategy) Locate(doc *goquery.Document) *goquery.Selection {
	var found *goquery.Selection
	doc.Find(s.Selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.ToLower(Text(sel))
		if !s.Keywords.HasIndicator(text) || !s.hasMarker(text) {
			return true
		}
		found = sel
		return false
	})
	return found
}

func (s *IndicatorStrategy) hasMarker(text string) bool {
	for i := 1; i <= s.MaxMarker; i++ {
		if strings.Contains(text, strconv.Itoa(i)+".") {
			return true
		}
	}
	return false
}
