package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/kashi"
)

// Run executes the romanize command.
func (c *RomanizeCmd) Run(deps *Dependencies) error {
	text := c.Text
	if text == "" && deps.Stdin != nil {
		data, err := io.ReadAll(deps.Stdin)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		text = string(data)
	}

	romaji, err := deps.Romanizer.Romanize(text)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kashi.ErrorMessage(err))
		return err
	}
	if romaji == "" {
		fmt.Fprintln(deps.Stderr, "error: no text to convert")
		return kashi.Errorf(kashi.EINVALID, "no text to convert")
	}

	fmt.Fprintln(deps.Stdout, romaji)
	return nil
}
