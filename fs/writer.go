// Package fs exports lookup results as markdown files.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/fwojciec/kashi"
	"gopkg.in/yaml.v3"
)

// Slug converts a song title into a file name stem. Letters and digits in
// any script are kept; every other run of characters becomes one hyphen.
func Slug(title string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	if b.Len() == 0 {
		return "untitled"
	}
	return b.String()
}

// frontmatter is the YAML header of an exported result.
type frontmatter struct {
	Title   string `yaml:"title"`
	Source  string `yaml:"source,omitempty"`
	Fetched string `yaml:"fetched"`
}

// FormatResult formats a result as markdown with YAML frontmatter.
func FormatResult(r *kashi.Result, fetched time.Time) (string, error) {
	header, err := yaml.Marshal(frontmatter{
		Title:   r.Title,
		Source:  r.SourceURL,
		Fetched: fetched.Format("2006-01-02"),
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n## Lyrics\n\n")
	b.WriteString(r.Lyrics())
	b.WriteString("\n")
	if r.Romaji != "" {
		b.WriteString("\n## Romaji\n\n")
		b.WriteString(r.Romaji)
		b.WriteString("\n")
	}
	if r.Verification != "" {
		b.WriteString("\n## Verification\n\n")
		b.WriteString(r.Verification)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// Ensure Writer implements kashi.ResultWriter at compile time.
var _ kashi.ResultWriter = (*Writer)(nil)

// Writer writes results as markdown files to a directory.
type Writer struct {
	baseDir string
	now     func() time.Time
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir, now: time.Now}
}

// WriteResult writes r to <baseDir>/<slug>.md, replacing any previous
// export of the same title. The file is written to a temporary name first
// and renamed into place so readers never see a partial file.
func (w *Writer) WriteResult(ctx context.Context, r *kashi.Result) (string, error) {
	if r == nil || strings.TrimSpace(r.Title) == "" {
		return "", kashi.Errorf(kashi.EINVALID, "result title required")
	}
	if len(r.Lines) == 0 {
		return "", kashi.Errorf(kashi.EINVALID, "result lyrics required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	content, err := FormatResult(r, w.now())
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, Slug(r.Title)+".md")
	tmp, err := os.CreateTemp(w.baseDir, ".kashi-*.tmp")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		return "", err
	}
	return fullPath, nil
}
