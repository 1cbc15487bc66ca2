package transform

import (
	"regexp"
	"strings"
)

var urlDelimiters = regexp.MustCompile(`[,;|\n\s]+`)

// ParseImageURLs splits a raw image cell on common delimiters, keeps
// only HTTP(S) URLs, and deduplicates while preserving first
// occurrence order.
func ParseImageURLs(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var urls []string
	seen := make(map[string]bool)

	for _, token := range urlDelimiters.Split(raw, -1) {
		token = strings.TrimSpace(token)
		if token == "" || seen[token] {
			continue
		}

		lower := strings.ToLower(token)
		if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
			continue
		}

		seen[token] = true
		urls = append(urls, token)
	}

	return urls
}
