package main

import (
	"fmt"

	"github.com/fwojciec/kashi"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	songs, err := deps.Songs.FindSongs(deps.Ctx, kashi.SongFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kashi.ErrorMessage(err))
		return err
	}

	if len(songs) == 0 {
		fmt.Fprintln(deps.Stdout, "No songs cached. Use 'kashi find' to look one up.")
		return nil
	}

	for _, s := range songs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", s.FetchedAt.Format("2006-01-02"), s.ID, s.Title, s.SourceURL)
	}

	return nil
}
