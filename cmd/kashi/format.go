package main

// maxURLWidth is the widest URL printed in progress lines.
const maxURLWidth = 72

// truncateURL shortens a URL to maxLen runes for display, keeping the end.
func truncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(url)
	if len(runes) <= maxLen {
		return url
	}
	if maxLen < 4 {
		return string(runes[:maxLen])
	}
	return "..." + string(runes[len(runes)-maxLen+3:])
}
