package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/kashi"
	"github.com/fwojciec/kashi/find"
	kashifs "github.com/fwojciec/kashi/fs"
	"github.com/fwojciec/kashi/gemini"
	"github.com/fwojciec/kashi/goquery"
	kashihttp "github.com/fwojciec/kashi/http"
	"github.com/fwojciec/kashi/kagome"
	"github.com/fwojciec/kashi/openai"
	"github.com/fwojciec/kashi/ratelimit"
	"github.com/fwojciec/kashi/readability"
	"github.com/fwojciec/kashi/rod"
	kashislog "github.com/fwojciec/kashi/slog"
	"github.com/fwojciec/kashi/sqlite"
	"github.com/fwojciec/kashi/trafilatura"
	kashiyaml "github.com/fwojciec/kashi/yaml"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Stdin feeds the romanize command when no text argument is given.
	Stdin io.Reader

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SongService kashi.SongService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Stdin:  os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("kashi"),
		kong.Description("Find Japanese song lyrics and convert them to romaji."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'kashi --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	deps.Logger = newLogger(cli.Verbose, stderr)

	kw := kashi.DefaultKeywords()
	if cli.Keywords != "" {
		kw, err = kashiyaml.LoadKeywords(cli.Keywords)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", kashi.ErrorMessage(err))
			return err
		}
	}

	if cmd == "find" || cmd == "list" || cmd == "delete" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set KASHI_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.SongService = sqlite.NewSongService(m.DB)
		deps.Songs = m.SongService
	}

	if cmd == "find" || cmd == "romanize" || (cmd == "extract" && cli.Extract.Romaji) {
		romanizer, err := kagome.NewRomanizer()
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", kashi.ErrorMessage(err))
			return err
		}
		deps.Romanizer = romanizer
	}

	if cmd == "find" || cmd == "extract" {
		registry := goquery.NewRegistry(goquery.NewExtractor(kw))
		registerSiteExtractors(registry, kw)
		deps.Extractors = kashislog.NewLoggingRegistry(registry, deps.Logger)

		fallback := cli.Find.Fallback
		if cmd == "extract" {
			fallback = "trafilatura"
		}
		deps.Fallback = kashislog.NewLoggingExtractor(newFallback(fallback, kw), "", deps.Logger)

		browser := cli.Find.Browser || cli.Extract.Browser
		fetcher, err := newFetcher(browser)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer fetcher.Close()
		deps.Fetcher = kashislog.NewLoggingFetcher(fetcher, deps.Logger)
	}

	if cmd == "find" {
		f := &find.Finder{
			Sources:     kashislog.NewLoggingSourceFinder(kashihttp.NewSearchService(), deps.Logger),
			Fetcher:     deps.Fetcher,
			Extractors:  deps.Extractors,
			Fallback:    deps.Fallback,
			Romanizer:   deps.Romanizer,
			Songs:       deps.Songs,
			RateLimiter: ratelimit.NewDomainLimiter(1.0),
			Logger:      deps.Logger,
			Concurrency: cli.Find.Concurrency,
		}

		if cli.Find.Render && !cli.Find.Browser {
			renderer, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			defer renderer.Close()
			f.Renderer = kashislog.NewLoggingFetcher(renderer, deps.Logger)
		}

		if cli.Find.Verify {
			verifier, err := newVerifier(ctx, cli.Find.Provider, stderr)
			if err != nil {
				return err
			}
			quota := ratelimit.NewQuota(ratelimit.DefaultInterval, ratelimit.DefaultHourlyLimit)
			f.Verifier = kashislog.NewLoggingVerifier(ratelimit.NewVerifier(verifier, quota), deps.Logger)
		}

		deps.Finder = f
		if cli.Find.Out != "" {
			deps.Writer = kashifs.NewWriter(cli.Find.Out)
		}
	}

	return kongCtx.Run(deps)
}

// siteSelectors lists lyrics containers of sites whose markup the generic
// strategy chain does not find reliably.
var siteSelectors = map[string][]string{
	"utaten.com":      {".hiragana", ".lyricBody"},
	"petitlyrics.com": {"#lyrics_window"},
	"jpopasia.com":    {".lyrics-content", "#lyrics"},
}

// registerSiteExtractors registers the site-tuned extractors with the registry.
func registerSiteExtractors(registry *goquery.Registry, kw kashi.Keywords) {
	for host, selectors := range siteSelectors {
		registry.Register(host, goquery.NewSiteExtractor(kw, selectors...))
	}
}

func newFallback(name string, kw kashi.Keywords) kashi.LyricsExtractor {
	var content kashi.ContentExtractor = trafilatura.NewExtractor()
	if name == "readability" {
		content = readability.NewExtractor()
	}
	return goquery.NewFallbackExtractor(content, kw)
}

func newFetcher(browser bool) (kashi.Fetcher, error) {
	if browser {
		return rod.NewFetcher()
	}
	return kashihttp.NewFetcher(), nil
}

func newVerifier(ctx context.Context, provider string, stderr io.Writer) (kashi.Verifier, error) {
	switch provider {
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "OPENAI_API_KEY environment variable not set.")
			return nil, fmt.Errorf("OPENAI_API_KEY not set")
		}
		return openai.NewVerifier(openai.Config{APIKey: apiKey})
	default:
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewVerifier(client, gemini.DefaultModel), nil
	}
}

func newLogger(verbose bool, stderr io.Writer) *slog.Logger {
	if verbose {
		return slog.New(slog.NewTextHandler(stderr, nil))
	}
	return slog.New(slog.DiscardHandler)
}

func defaultDBPath() string {
	if path := os.Getenv("KASHI_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "kashi.db"
	}
	return filepath.Join(home, ".kashi", "kashi.db")
}
