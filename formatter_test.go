package kashi_test

import (
	"testing"

	"github.com/fwojciec/kashi"
	"github.com/stretchr/testify/assert"
)

func TestFormatResult(t *testing.T) {
	t.Parallel()

	t.Run("formats lyrics with source header", func(t *testing.T) {
		t.Parallel()

		r := &kashi.Result{
			Title:     "Sakura",
			SourceURL: "https://example.com/sakura",
			Lines:     []string{"1. 桜", "2. 花"},
		}

		expected := "--- Lyrics from https://example.com/sakura ---\n\n1. 桜\n2. 花"
		assert.Equal(t, expected, kashi.FormatResult(r))
	})

	t.Run("uses title when source URL is empty", func(t *testing.T) {
		t.Parallel()

		r := &kashi.Result{Title: "Sakura", Lines: []string{"1. 桜"}}

		assert.Equal(t, "--- Lyrics from Sakura ---\n\n1. 桜", kashi.FormatResult(r))
	})

	t.Run("appends romaji and verification sections", func(t *testing.T) {
		t.Parallel()

		r := &kashi.Result{
			SourceURL:    "https://example.com/sakura",
			Lines:        []string{"1. 桜"},
			Romaji:       "1. sakura",
			Verification: "Accuracy: 10/10",
		}

		expected := "--- Lyrics from https://example.com/sakura ---\n\n1. 桜" +
			"\n\n--- Romaji conversion ---\n\n1. sakura" +
			"\n\n--- Verification ---\nAccuracy: 10/10"
		assert.Equal(t, expected, kashi.FormatResult(r))
	})

	t.Run("returns empty string for nil result", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, kashi.FormatResult(nil))
	})

	t.Run("returns empty string when no lines", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, kashi.FormatResult(&kashi.Result{Title: "x"}))
	})
}
