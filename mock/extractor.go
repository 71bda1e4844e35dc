package mock

import "github.com/fwojciec/kashi"

var _ kashi.LyricsExtractor = (*LyricsExtractor)(nil)

// LyricsExtractor is a mock implementation of kashi.LyricsExtractor.
type LyricsExtractor struct {
	ExtractLyricsFn func(html string) ([]string, error)
}

func (e *LyricsExtractor) ExtractLyrics(html string) ([]string, error) {
	return e.ExtractLyricsFn(html)
}

var _ kashi.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of kashi.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*kashi.ExtractResult, error)
}

func (e *ContentExtractor) Extract(html string) (*kashi.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ kashi.ExtractorRegistry = (*ExtractorRegistry)(nil)

// ExtractorRegistry is a mock implementation of kashi.ExtractorRegistry.
type ExtractorRegistry struct {
	GetForURLFn func(rawURL string) kashi.LyricsExtractor
}

func (r *ExtractorRegistry) GetForURL(rawURL string) kashi.LyricsExtractor {
	return r.GetForURLFn(rawURL)
}
