package kashi

import "strings"

// FormatResult renders a lookup result as sectioned plain text for display.
// Sections without content are omitted.
func FormatResult(r *Result) string {
	if r == nil || len(r.Lines) == 0 {
		return ""
	}

	var sb strings.Builder
	header := r.SourceURL
	if header == "" {
		header = r.Title
	}
	sb.WriteString("--- Lyrics from " + header + " ---\n\n")
	sb.WriteString(r.Lyrics())

	if r.Romaji != "" {
		sb.WriteString("\n\n--- Romaji conversion ---\n\n")
		sb.WriteString(r.Romaji)
	}

	if r.Verification != "" {
		sb.WriteString("\n\n--- Verification ---\n")
		sb.WriteString(r.Verification)
	}

	return sb.String()
}
