package impl

import (
	"net/url"
	"strings"
)

// matchKey reduces a page URL to the string matched against stored credential
// URLs. A parseable URL contributes its hostname; anything else falls back to
// the raw trimmed input, so partial entries like "github" still match. Blank
// input yields a blank key, which callers treat as "match nothing".
func matchKey(rawURL string) string {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return ""
	}

	parsed, err := url.Parse(trimmed)
	if err == nil && parsed.Hostname() != "" {
		return parsed.Hostname()
	}

	return trimmed
}
