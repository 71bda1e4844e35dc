package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/kashi"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	html, err := c.load(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kashi.ErrorMessage(err))
		return err
	}

	lines, err := deps.Extractors.GetForURL(c.Source).ExtractLyrics(html)
	if err == nil && len(lines) == 0 && deps.Fallback != nil {
		lines, err = deps.Fallback.ExtractLyrics(html)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kashi.ErrorMessage(err))
		return err
	}
	if len(lines) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no lyrics found in %s\n", c.Source)
		return kashi.Errorf(kashi.ENOTFOUND, "no lyrics found in %s", c.Source)
	}

	fmt.Fprintln(deps.Stdout, kashi.FormatLyrics(lines))

	if c.Romaji {
		romaji, err := deps.Romanizer.Romanize(kashi.FormatLyrics(lines))
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", kashi.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "\n--- Romaji conversion ---\n\n%s\n", romaji)
	}

	return nil
}

// load fetches the source when it is a URL and reads it from disk otherwise.
func (c *ExtractCmd) load(deps *Dependencies) (string, error) {
	if isURL(c.Source) {
		return deps.Fetcher.Fetch(deps.Ctx, c.Source)
	}
	data, err := os.ReadFile(c.Source)
	if errors.Is(err, os.ErrNotExist) {
		return "", kashi.Errorf(kashi.ENOTFOUND, "file %s not found", c.Source)
	} else if err != nil {
		return "", err
	}
	return string(data), nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
