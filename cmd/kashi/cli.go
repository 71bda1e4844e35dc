package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/kashi"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Songs      kashi.SongService
	Finder     kashi.LyricsFinder
	Fetcher    kashi.Fetcher
	Extractors kashi.ExtractorRegistry
	Fallback   kashi.LyricsExtractor
	Romanizer  kashi.Romanizer
	Writer     kashi.ResultWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose  bool   `short:"v" help:"Log each pipeline step to stderr"`
	Keywords string `type:"path" env:"KASHI_KEYWORDS" help:"YAML file with header, boilerplate and indicator keywords"`

	Find     FindCmd     `cmd:"" help:"Find lyrics for a song title"`
	Extract  ExtractCmd  `cmd:"" help:"Extract lyrics from one page URL or HTML file"`
	Romanize RomanizeCmd `cmd:"" help:"Convert Japanese text to romaji"`
	List     ListCmd     `cmd:"" help:"List cached songs"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a cached song"`
}

// FindCmd is the "find" subcommand.
type FindCmd struct {
	Title       string `arg:"" help:"Song title"`
	Verify      bool   `help:"Ask a language model to check the romaji"`
	Provider    string `enum:"gemini,openai" default:"gemini" help:"Language model provider for --verify (gemini, openai)"`
	Refresh     bool   `short:"r" help:"Ignore the cache and search again"`
	Out         string `short:"o" type:"path" help:"Also write the result as markdown into this directory"`
	Browser     bool   `short:"b" help:"Render pages in headless Chrome"`
	Render      bool   `help:"Retry pages without lyrics in headless Chrome"`
	Fallback    string `enum:"trafilatura,readability" default:"trafilatura" help:"Main content extractor used when no lyrics container is found"`
	Concurrency int    `short:"c" default:"3" help:"Concurrent page fetch limit"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Source  string `arg:"" help:"Page URL or path to a saved HTML file"`
	Romaji  bool   `help:"Also print the romaji conversion"`
	Browser bool   `short:"b" help:"Render the page in headless Chrome"`
}

// RomanizeCmd is the "romanize" subcommand.
type RomanizeCmd struct {
	Text string `arg:"" optional:"" help:"Text to convert; read from stdin when omitted"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Limit int `short:"n" help:"Show at most this many songs"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Title string `arg:"" help:"Song title"`
	Force bool   `help:"Confirm deletion"`
}
