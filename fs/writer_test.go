package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/kashi"
	"github.com/fwojciec/kashi/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"lower-cases and hyphenates", "Yoru ni Kakeru", "yoru-ni-kakeru"},
		{"collapses punctuation runs", "Idol!! (TV Size)", "idol-tv-size"},
		{"keeps Japanese letters", "夜に駆ける", "夜に駆ける"},
		{"mixes scripts", "Lemon / 米津玄師", "lemon-米津玄師"},
		{"falls back for empty slug", "!!!", "untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fs.Slug(tt.title))
		})
	}
}

func TestFormatResult(t *testing.T) {
	t.Parallel()

	t.Run("writes frontmatter and sections", func(t *testing.T) {
		t.Parallel()

		r := &kashi.Result{
			Title:        "Sakura: Reprise",
			SourceURL:    "https://example.com/sakura",
			Lines:        []string{"1. 桜", "2. 空"},
			Romaji:       "1. sakura\n2. sora",
			Verification: "Accuracy: 9/10",
		}

		got, err := fs.FormatResult(r, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		parts := strings.SplitN(got, "---\n", 3)
		require.Len(t, parts, 3)
		assert.Empty(t, parts[0])

		var meta map[string]string
		require.NoError(t, yaml.Unmarshal([]byte(parts[1]), &meta))
		assert.Equal(t, "Sakura: Reprise", meta["title"])
		assert.Equal(t, "https://example.com/sakura", meta["source"])
		assert.Equal(t, "2024-04-01", meta["fetched"])

		assert.Contains(t, parts[2], "## Lyrics\n\n1. 桜\n2. 空\n")
		assert.Contains(t, parts[2], "## Romaji\n\n1. sakura\n2. sora\n")
		assert.Contains(t, parts[2], "## Verification\n\nAccuracy: 9/10\n")
	})

	t.Run("omits empty sections", func(t *testing.T) {
		t.Parallel()

		r := &kashi.Result{Title: "Sora", Lines: []string{"1. Sora"}}

		got, err := fs.FormatResult(r, time.Now())
		require.NoError(t, err)

		assert.NotContains(t, got, "## Romaji")
		assert.NotContains(t, got, "## Verification")
		assert.NotContains(t, got, "source:")
	})
}

func TestWriter_WriteResult(t *testing.T) {
	t.Parallel()

	t.Run("writes markdown file named by slug", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "out")
		w := fs.NewWriter(dir)

		path, err := w.WriteResult(context.Background(), &kashi.Result{
			Title: "Yoru ni Kakeru",
			Lines: []string{"1. Sora"},
		})

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "yoru-ni-kakeru.md"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "title: Yoru ni Kakeru")
		assert.Contains(t, string(data), "1. Sora")
	})

	t.Run("replaces previous export", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)
		ctx := context.Background()

		_, err := w.WriteResult(ctx, &kashi.Result{Title: "Sora", Lines: []string{"1. Old"}})
		require.NoError(t, err)
		path, err := w.WriteResult(ctx, &kashi.Result{Title: "Sora", Lines: []string{"1. New"}})
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "1. New")
		assert.NotContains(t, string(data), "1. Old")

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temporary files should be cleaned up")
	})

	t.Run("returns EINVALID without title", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		_, err := w.WriteResult(context.Background(), &kashi.Result{Lines: []string{"1. Sora"}})

		require.Error(t, err)
		assert.Equal(t, kashi.EINVALID, kashi.ErrorCode(err))
	})

	t.Run("returns EINVALID without lyrics", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		_, err := w.WriteResult(context.Background(), &kashi.Result{Title: "Sora"})

		require.Error(t, err)
		assert.Equal(t, kashi.EINVALID, kashi.ErrorCode(err))
	})
}
