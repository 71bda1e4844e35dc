// Package find orchestrates a lyrics lookup: cache, source discovery,
// concurrent page retrieval, extraction, romanization and verification.
package find

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/kashi"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of candidate pages fetched at once.
const DefaultConcurrency = 3

// Ensure Finder implements kashi.LyricsFinder at compile time.
var _ kashi.LyricsFinder = (*Finder)(nil)

// Finder implements kashi.LyricsFinder. Songs, Verifier, Fallback,
// Renderer and RateLimiter are optional.
type Finder struct {
	Sources kashi.SourceFinder
	Fetcher kashi.Fetcher
	// Renderer refetches pages whose static HTML yields no lyrics, for
	// sites that build the lyrics block with JavaScript.
	Renderer    kashi.Fetcher
	Extractors  kashi.ExtractorRegistry
	Fallback    kashi.LyricsExtractor
	Romanizer   kashi.Romanizer
	Verifier    kashi.Verifier
	Songs       kashi.SongService
	RateLimiter kashi.DomainLimiter
	Logger      *slog.Logger
	Concurrency int
	RetryDelays []time.Duration
}

// candidate holds the outcome of processing a single source.
type candidate struct {
	position int
	url      string
	lines    []string
	err      error
	done     bool
}

// Find returns the lyrics for title.
func (f *Finder) Find(ctx context.Context, title string, opts kashi.FindOptions, progress kashi.FindProgressFunc) (*kashi.Result, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, kashi.Errorf(kashi.EINVALID, "song title required")
	}

	cached, err := f.lookup(ctx, title)
	if err != nil {
		return nil, err
	}
	if cached != nil && !opts.Refresh {
		result := &kashi.Result{
			Title:     cached.Title,
			SourceURL: cached.SourceURL,
			Lines:     strings.Split(cached.Lyrics, "\n"),
			Romaji:    cached.Romaji,
			Cached:    true,
		}
		if opts.Verify {
			result.Verification = f.verify(ctx, result)
		}
		return result, nil
	}

	sources, err := f.Sources.FindSources(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("source discovery: %w", err)
	}
	if len(sources) == 0 {
		return nil, kashi.Errorf(kashi.ENOTFOUND, "no lyrics sources found for %q", title)
	}

	winner, err := f.fetchFirst(ctx, sources, progress)
	if err != nil {
		return nil, err
	}
	if winner == nil {
		return nil, kashi.Errorf(kashi.ENOTFOUND, "no lyrics found for %q", title)
	}

	result := &kashi.Result{
		Title:     title,
		SourceURL: winner.url,
		Lines:     winner.lines,
	}

	romaji, err := f.Romanizer.Romanize(result.Lyrics())
	if err != nil {
		result.Verification = fmt.Sprintf("Romaji conversion failed: %s", kashi.ErrorMessage(err))
	} else {
		result.Romaji = romaji
		if opts.Verify {
			result.Verification = f.verify(ctx, result)
		}
	}

	f.store(ctx, cached, result)
	return result, nil
}

// lookup returns the cached song for title, or nil.
func (f *Finder) lookup(ctx context.Context, title string) (*kashi.Song, error) {
	if f.Songs == nil {
		return nil, nil
	}
	songs, err := f.Songs.FindSongs(ctx, kashi.SongFilter{Title: &title, Limit: 1})
	if err != nil {
		return nil, fmt.Errorf("cache lookup: %w", err)
	}
	if len(songs) == 0 {
		return nil, nil
	}
	return songs[0], nil
}

// store caches result, replacing stale. Cache failures are logged and do
// not fail the lookup.
func (f *Finder) store(ctx context.Context, stale *kashi.Song, result *kashi.Result) {
	if f.Songs == nil {
		return
	}
	if stale != nil {
		if err := f.Songs.DeleteSong(ctx, stale.ID); err != nil && kashi.ErrorCode(err) != kashi.ENOTFOUND {
			f.logger().Warn("cache delete", "title", stale.Title, "err", err)
			return
		}
	}
	song := &kashi.Song{
		Title:     result.Title,
		SourceURL: result.SourceURL,
		Lyrics:    result.Lyrics(),
		Romaji:    result.Romaji,
	}
	if err := f.Songs.CreateSong(ctx, song); err != nil {
		f.logger().Warn("cache store", "title", result.Title, "err", err)
	}
}

// verify returns the verifier's critique, or a note explaining why there is
// none.
func (f *Finder) verify(ctx context.Context, result *kashi.Result) string {
	if f.Verifier == nil {
		return "Verification unavailable: no language model configured."
	}
	if result.Romaji == "" {
		return "Verification skipped: no romaji to verify."
	}
	critique, err := f.Verifier.Verify(ctx, result.Lyrics(), result.Romaji)
	if err != nil {
		if kashi.ErrorCode(err) == kashi.ERATELIMIT {
			return "Verification skipped: " + kashi.ErrorMessage(err)
		}
		return "Verification failed: " + kashi.ErrorMessage(err)
	}
	return critique
}

// fetchFirst processes sources concurrently and returns the first source in
// discovery order that yields lyrics, or nil when none does. Workers still
// running once the winner is known are canceled.
func (f *Finder) fetchFirst(ctx context.Context, sources []kashi.Source, progress kashi.FindProgressFunc) (*candidate, error) {
	concurrency := f.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	total := len(sources)
	report(progress, kashi.FindProgress{Type: kashi.ProgressStarted, Total: total})

	resultCh := make(chan candidate, total)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, src := range sources {
			g.Go(func() error {
				lines, err := f.processURL(gctx, src.URL)
				resultCh <- candidate{position: i, url: src.URL, lines: lines, err: err, done: true}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]candidate, total)
	var completed int
	var winner *candidate
	for result := range resultCh {
		results[result.position] = result
		if winner != nil {
			continue
		}

		completed++
		if result.err != nil {
			report(progress, kashi.FindProgress{
				Type:      kashi.ProgressFailed,
				URL:       result.url,
				Completed: completed,
				Total:     total,
				Error:     result.err,
			})
		} else {
			report(progress, kashi.FindProgress{
				Type:      kashi.ProgressCompleted,
				URL:       result.url,
				Completed: completed,
				Total:     total,
				Found:     len(result.lines) > 0,
			})
		}

		if w := firstSettled(results); w != nil {
			winner = w
			cancel()
		}
	}

	report(progress, kashi.FindProgress{Type: kashi.ProgressFinished, Completed: completed, Total: total})

	if winner == nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	return winner, nil
}

// firstSettled returns the earliest candidate with lyrics once every
// candidate before it has finished without lyrics.
func firstSettled(results []candidate) *candidate {
	for i := range results {
		if !results[i].done {
			return nil
		}
		if results[i].err == nil && len(results[i].lines) > 0 {
			return &results[i]
		}
	}
	return nil
}

// processURL fetches one candidate page and extracts its lyrics.
func (f *Finder) processURL(ctx context.Context, rawURL string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if f.RateLimiter != nil {
		if err := f.RateLimiter.Wait(ctx, host(rawURL)); err != nil {
			return nil, err
		}
	}

	delays := f.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetry(ctx, rawURL, f.Fetcher.Fetch, f.Logger, delays)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	lines, err := f.extract(rawURL, html)
	if err != nil || len(lines) > 0 || f.Renderer == nil {
		return lines, err
	}

	rendered, err := FetchWithRetry(ctx, rawURL, f.Renderer.Fetch, f.Logger, delays)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return f.extract(rawURL, rendered)
}

// extract runs the site extractor, then the fallback extractor when the
// site extractor finds nothing.
func (f *Finder) extract(rawURL, html string) ([]string, error) {
	lines, err := f.Extractors.GetForURL(rawURL).ExtractLyrics(html)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	if len(lines) > 0 || f.Fallback == nil {
		return lines, nil
	}

	lines, err = f.Fallback.ExtractLyrics(html)
	if err != nil {
		return nil, fmt.Errorf("fallback extract: %w", err)
	}
	return lines, nil
}

func (f *Finder) logger() *slog.Logger {
	if f.Logger != nil {
		return f.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func report(progress kashi.FindProgressFunc, event kashi.FindProgress) {
	if progress != nil {
		progress(event)
	}
}

func host(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Hostname()
}
