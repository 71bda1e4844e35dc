package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// invisible lists elements whose text content is never rendered.
var invisible = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
}

// textNodes returns the visible text nodes under sel in document order.
func textNodes(sel *goquery.Selection) []string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			parts = append(parts, n.Data)
			return
		case html.ElementNode:
			if invisible[n.Data] {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return parts
}

// TextLines flattens the visible text under sel into trimmed, non-blank
// lines. Every text node starts a new line and embedded newlines split
// further.
func TextLines(sel *goquery.Selection) []string {
	if sel == nil {
		return nil
	}
	var lines []string
	for _, part := range textNodes(sel) {
		for _, line := range strings.Split(part, "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				lines = append(lines, line)
			}
		}
	}
	return lines
}

// Text returns the visible text under sel with text nodes concatenated.
func Text(sel *goquery.Selection) string {
	if sel == nil {
		return ""
	}
	return strings.Join(textNodes(sel), "")
}

// runeLen returns the length of s in characters.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
