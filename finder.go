package kashi

import "context"

// Result is the outcome of a lyrics lookup.
type Result struct {
	Title     string
	SourceURL string
	Lines     []string
	Romaji    string

	// Verification holds the language model critique, or a note explaining
	// why verification did not run.
	Verification string

	// Cached is true when the result came from the song cache.
	Cached bool
}

// Lyrics returns the lyric lines as plain text.
func (r *Result) Lyrics() string {
	return FormatLyrics(r.Lines)
}

// FindOptions configures a lyrics lookup.
type FindOptions struct {
	// Verify requests a language model critique of the romanization.
	Verify bool

	// Refresh bypasses the song cache.
	Refresh bool
}

// ProgressType indicates the kind of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// FindProgress reports progress while candidate pages are processed.
// Found is set on completed events for pages that yielded lyrics.
type FindProgress struct {
	Type      ProgressType
	URL       string
	Completed int
	Total     int
	Found     bool
	Error     error
}

// FindProgressFunc is called as candidate pages are processed.
type FindProgressFunc func(FindProgress)

// LyricsFinder looks up lyrics for a song title end to end: discovery,
// retrieval, extraction, romanization and optional verification.
type LyricsFinder interface {
	// Find returns the lyrics for title.
	// Returns EINVALID for a blank title and ENOTFOUND when no source
	// yields lyrics.
	Find(ctx context.Context, title string, opts FindOptions, progress FindProgressFunc) (*Result, error)
}

// ResultWriter persists a lookup result outside the cache, for example as
// a file the user can keep.
type ResultWriter interface {
	// WriteResult stores r and returns where it was written.
	// Returns EINVALID if r has no title or no lyrics.
	WriteResult(ctx context.Context, r *Result) (string, error)
}
