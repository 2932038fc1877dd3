// Package links extracts URL-shaped substrings from free text.
package links

import (
	"regexp"
	"strings"
)

// urlPattern matches http(s) URLs up to the first whitespace, quote, or
// angle bracket. Search responses wrap links in exactly these delimiters.
var urlPattern = regexp.MustCompile(`https?://[^\s<>"']+`)

// Extract returns every URL found in text, in first-seen order. Duplicates
// are kept. Trailing sentence punctuation is not part of the URL; matches
// that trim down to a bare scheme are dropped.
func Extract(text string) []string {
	var urls []string
	for _, m := range urlPattern.FindAllString(text, -1) {
		m = strings.TrimRight(m, ".,;:!?")
		if !urlPattern.MatchString(m) {
			continue
		}
		urls = append(urls, m)
	}
	return urls
}
