package main

import (
	"fmt"

	"github.com/fwojciec/kashi"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return kashi.Errorf(kashi.EINVALID, "use --force to confirm deletion")
	}

	songs, err := deps.Songs.FindSongs(deps.Ctx, kashi.SongFilter{Title: &c.Title})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kashi.ErrorMessage(err))
		return err
	}

	if len(songs) == 0 {
		fmt.Fprintf(deps.Stderr, "error: song %q not cached. Use 'kashi list' to see cached songs.\n", c.Title)
		return kashi.Errorf(kashi.ENOTFOUND, "song %q not cached", c.Title)
	}

	song := songs[0]
	if err := deps.Songs.DeleteSong(deps.Ctx, song.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kashi.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted song %q\n", song.Title)
	return nil
}
