package kashi_test

import (
	"testing"

	"github.com/fwojciec/kashi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSong_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts complete song", func(t *testing.T) {
		t.Parallel()

		s := &kashi.Song{Title: "Sakura", SourceURL: "https://example.com", Lyrics: "1. 桜"}

		require.NoError(t, s.Validate())
	})

	t.Run("requires title", func(t *testing.T) {
		t.Parallel()

		s := &kashi.Song{Title: "  ", SourceURL: "https://example.com", Lyrics: "1. 桜"}

		err := s.Validate()
		require.Error(t, err)
		assert.Equal(t, kashi.EINVALID, kashi.ErrorCode(err))
		assert.Equal(t, "song title required", kashi.ErrorMessage(err))
	})

	t.Run("requires source URL", func(t *testing.T) {
		t.Parallel()

		s := &kashi.Song{Title: "Sakura", Lyrics: "1. 桜"}

		err := s.Validate()
		require.Error(t, err)
		assert.Equal(t, "song source URL required", kashi.ErrorMessage(err))
	})

	t.Run("requires lyrics", func(t *testing.T) {
		t.Parallel()

		s := &kashi.Song{Title: "Sakura", SourceURL: "https://example.com"}

		err := s.Validate()
		require.Error(t, err)
		assert.Equal(t, "song lyrics required", kashi.ErrorMessage(err))
	})
}

func TestSite(t *testing.T) {
	t.Parallel()

	site := kashi.Site{Name: "ln", Host: "lyrical-nonsense.com"}

	t.Run("builds site-restricted query", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, `site:lyrical-nonsense.com "Sakura"`, site.Query("Sakura"))
	})

	t.Run("matches host and subdomains", func(t *testing.T) {
		t.Parallel()

		assert.True(t, site.Matches("https://lyrical-nonsense.com/global/lyrics/x/"))
		assert.True(t, site.Matches("https://www.lyrical-nonsense.com/lyrics/x/"))
		assert.False(t, site.Matches("https://notlyrical-nonsense.com/x"))
		assert.False(t, site.Matches("https://example.com/?q=lyrical-nonsense.com"))
		assert.False(t, site.Matches("not a url"))
	})
}

func TestVerifyPrompt(t *testing.T) {
	t.Parallel()

	prompt := kashi.VerifyPrompt("桜", "sakura")

	assert.Contains(t, prompt, "Japanese: 桜")
	assert.Contains(t, prompt, "Romaji: sakura")
	assert.Contains(t, prompt, "Accuracy: [score]/10")
}
