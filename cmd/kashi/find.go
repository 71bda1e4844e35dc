package main

import (
	"fmt"

	"github.com/fwojciec/kashi"
)

// Run executes the find command.
func (c *FindCmd) Run(deps *Dependencies) error {
	progress := func(event kashi.FindProgress) {
		switch event.Type {
		case kashi.ProgressStarted:
			fmt.Fprintf(deps.Stderr, "  Found %d candidate pages\n", event.Total)
		case kashi.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", truncateURL(event.URL, maxURLWidth), event.Error)
		}
	}

	result, err := deps.Finder.Find(deps.Ctx, c.Title, kashi.FindOptions{
		Verify:  c.Verify,
		Refresh: c.Refresh,
	}, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kashi.ErrorMessage(err))
		return err
	}

	if result.Cached {
		fmt.Fprintln(deps.Stderr, "  (cached; use --refresh to search again)")
	}
	fmt.Fprintln(deps.Stdout, kashi.FormatResult(result))

	if deps.Writer != nil {
		path, err := deps.Writer.WriteResult(deps.Ctx, result)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", kashi.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "Saved %s\n", path)
	}

	return nil
}
