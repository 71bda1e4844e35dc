// Package kagome implements kashi.Romanizer with the kagome morphological
// analyzer and the IPA dictionary.
package kagome

import (
	"strings"
	"sync"

	"github.com/fwojciec/kashi"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Ensure Romanizer implements kashi.Romanizer at compile time.
var _ kashi.Romanizer = (*Romanizer)(nil)

// Romanizer converts Japanese lyrics to Hepburn-style romaji. Each token is
// replaced by the romaji of its dictionary reading.
type Romanizer struct {
	tok *tokenizer.Tokenizer
}

var (
	defaultOnce sync.Once
	defaultTok  *tokenizer.Tokenizer
	defaultErr  error
)

// NewRomanizer creates a Romanizer. The IPA dictionary is loaded once per
// process and shared.
func NewRomanizer() (*Romanizer, error) {
	defaultOnce.Do(func() {
		defaultTok, defaultErr = tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	})
	if defaultErr != nil {
		return nil, kashi.Errorf(kashi.EINTERNAL, "load tokenizer: %v", defaultErr)
	}
	return &Romanizer{tok: defaultTok}, nil
}

// Romanize converts text line by line. Lyric markers are kept verbatim and
// lines without Japanese pass through unchanged.
func (r *Romanizer) Romanize(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	lines := strings.Split(text, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = r.romanizeLine(line)
	}
	return strings.Join(out, "\n"), nil
}

func (r *Romanizer) romanizeLine(line string) string {
	if !kashi.ContainsJapanese(line) {
		return line
	}

	marker, content := kashi.SplitMarker(line)
	words := r.words(content)
	if marker == "" {
		return strings.Join(words, " ")
	}
	if len(words) == 0 {
		return marker
	}
	return marker + " " + strings.Join(words, " ")
}

// words returns the romanized tokens of s, skipping whitespace.
func (r *Romanizer) words(s string) []string {
	var words []string
	for _, t := range r.tok.Tokenize(s) {
		surface := strings.TrimSpace(t.Surface)
		if surface == "" {
			continue
		}
		words = append(words, romanizeToken(surface, t))
	}
	return words
}

// romanizeToken returns the romaji for a token with a known reading and
// the surface form otherwise.
func romanizeToken(surface string, t tokenizer.Token) string {
	if !kashi.ContainsJapanese(surface) {
		return surface
	}
	reading, ok := t.Reading()
	if !ok || reading == "" || reading == "*" {
		reading = surface
	}
	romaji := KanaToRomaji(reading)
	if kashi.ContainsJapanese(romaji) {
		// Kanji with no dictionary reading.
		return surface
	}
	return romaji
}
