package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/kashi"
	main "github.com/fwojciec/kashi/cmd/kashi"
	"github.com/fwojciec/kashi/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registryReturning(lines []string) *mock.ExtractorRegistry {
	return &mock.ExtractorRegistry{
		GetForURLFn: func(_ string) kashi.LyricsExtractor {
			return &mock.LyricsExtractor{
				ExtractLyricsFn: func(_ string) ([]string, error) {
					return lines, nil
				},
			}
		},
	}
}

func TestExtractCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("fetches URL and prints lines", func(t *testing.T) {
		t.Parallel()

		var fetched string
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					fetched = url
					return "<html></html>", nil
				},
			},
			Extractors: registryReturning([]string{"1. a", "2. b"}),
		}

		err := (&main.ExtractCmd{Source: "https://utaten.com/lyric/1"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "https://utaten.com/lyric/1", fetched)
		assert.Equal(t, "1. a\n2. b\n", stdout.String())
	})

	t.Run("reads HTML file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		require.NoError(t, os.WriteFile(path, []byte("<html>saved</html>"), 0o644))

		var got string
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Extractors: &mock.ExtractorRegistry{
				GetForURLFn: func(_ string) kashi.LyricsExtractor {
					return &mock.LyricsExtractor{
						ExtractLyricsFn: func(html string) ([]string, error) {
							got = html
							return []string{"1. x"}, nil
						},
					}
				},
			},
		}

		err := (&main.ExtractCmd{Source: path}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "<html>saved</html>", got)
	})

	t.Run("uses fallback when registry finds nothing", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		require.NoError(t, os.WriteFile(path, []byte("<html></html>"), 0o644))

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Extractors: registryReturning(nil),
			Fallback: &mock.LyricsExtractor{
				ExtractLyricsFn: func(_ string) ([]string, error) {
					return []string{"1. fallback"}, nil
				},
			},
		}

		err := (&main.ExtractCmd{Source: path}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "1. fallback\n", stdout.String())
	})

	t.Run("returns not found when no lyrics", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		require.NoError(t, os.WriteFile(path, []byte("<html></html>"), 0o644))

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     &bytes.Buffer{},
			Stderr:     stderr,
			Extractors: registryReturning(nil),
		}

		err := (&main.ExtractCmd{Source: path}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, kashi.ENOTFOUND, kashi.ErrorCode(err))
		assert.Contains(t, stderr.String(), "no lyrics found")
	})

	t.Run("returns not found for missing file", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
		}

		err := (&main.ExtractCmd{Source: filepath.Join(t.TempDir(), "missing.html")}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, kashi.ENOTFOUND, kashi.ErrorCode(err))
	})

	t.Run("prints romaji when requested", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "<html></html>", nil
				},
			},
			Extractors: registryReturning([]string{"1. 空"}),
			Romanizer: &mock.Romanizer{
				RomanizeFn: func(_ string) (string, error) {
					return "1. sora", nil
				},
			},
		}

		err := (&main.ExtractCmd{Source: "https://utaten.com/lyric/1", Romaji: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "1. 空\n\n--- Romaji conversion ---\n\n1. sora\n", stdout.String())
	})
}
