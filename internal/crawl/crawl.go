// Package crawl fetches a cleaned syllabus extraction from a candidate page.
//
// Two implementations exist: FirecrawlClient delegates scraping to the
// Firecrawl API, and Fetcher downloads the page directly and reduces
// HTML, PDF, or DOCX content to readable plain text.
package crawl

import "strings"

// DefaultMaxTextBytes bounds how much page text one crawl may contribute
// to the aggregate handed to the language model.
const DefaultMaxTextBytes = 32 * 1024

// clampText trims and truncates page text to at most max bytes.
func clampText(s string, max int) string {
	s = strings.TrimSpace(s)
	if max > 0 && len(s) > max {
		s = s[:max] + "\n[truncated]"
	}
	return s
}
