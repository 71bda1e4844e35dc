package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/kashi"
)

// MaxContinuationLength is the length in characters at which a line stops
// counting as lyric text. Injected ads and attribution tend to be long prose.
const MaxContinuationLength = 200

// ScanMode controls how a scan reacts to boilerplate lines.
type ScanMode int

const (
	// ScanStrict ends the lyrics block at the first boilerplate line.
	ScanStrict ScanMode = iota

	// ScanRelaxed skips boilerplate lines and keeps scanning.
	ScanRelaxed
)

// Reconstructor reassembles numbered lyric lines from a container's text,
// dropping the navigation and attribution text interleaved with them.
// Reconstructor is safe for concurrent use.
type Reconstructor struct {
	keywords kashi.Keywords
}

// NewReconstructor creates a Reconstructor using the given keyword lists.
func NewReconstructor(kw kashi.Keywords) *Reconstructor {
	return &Reconstructor{keywords: kw}
}

// Reconstruct returns the lyric lines found in sel, or nil if none.
func (r *Reconstructor) Reconstruct(sel *goquery.Selection) []string {
	if sel == nil || sel.Length() == 0 {
		return nil
	}
	return r.ReconstructLines(TextLines(sel))
}

// ReconstructLines runs a strict scan over lines and, when that finds
// nothing, one relaxed scan. Returns nil if neither finds a marker.
func (r *Reconstructor) ReconstructLines(lines []string) []string {
	if out := r.Scan(lines, ScanStrict); len(out) > 0 {
		return out
	}
	if out := r.Scan(lines, ScanRelaxed); len(out) > 0 {
		return out
	}
	return nil
}

// Scan makes a single left-to-right pass over lines in the given mode.
func (r *Reconstructor) Scan(lines []string, mode ScanMode) []string {
	s := &scanner{keywords: &r.keywords, mode: mode}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !s.step(line) {
			break
		}
	}
	s.flush()
	return s.out
}

type scanState int

const (
	outsideMarker scanState = iota
	insideMarker
)

// scanner is the two-state machine behind Scan. Outside a marker it waits
// for a marker line; inside it collects continuation text until the next
// marker or the end of the block.
type scanner struct {
	keywords *kashi.Keywords
	mode     ScanMode

	state   scanState
	marker  string
	content []string
	out     []string
}

// step consumes one non-blank line. It returns false when the scan must stop.
func (s *scanner) step(line string) bool {
	switch {
	case s.state == outsideMarker && s.keywords.IsHeader(line):
		// Section header such as "Romaji Lyrics".
	case s.keywords.IsBoilerplate(line):
		return s.mode == ScanRelaxed
	case kashi.IsMarker(line):
		s.flush()
		s.marker = line
		s.state = insideMarker
	case s.state == insideMarker && isContinuation(line):
		s.content = append(s.content, line)
	}
	return true
}

// flush emits the pending marker with its content and returns to the
// outside state.
func (s *scanner) flush() {
	if s.state != insideMarker {
		return
	}
	line := s.marker
	if len(s.content) > 0 {
		line += " " + strings.Join(s.content, " ")
	}
	s.out = append(s.out, line)
	s.state = outsideMarker
	s.marker = ""
	s.content = nil
}

// isContinuation reports whether line can be lyric text following a marker.
func isContinuation(line string) bool {
	if runeLen(line) >= MaxContinuationLength {
		return false
	}
	lower := strings.ToLower(line)
	for _, prefix := range []string{"http", "www", "©", "copyright"} {
		if strings.HasPrefix(lower, prefix) {
			return false
		}
	}
	return true
}
