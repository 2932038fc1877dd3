// Package pipeline runs the syllabus acquisition sequence:
// search, extract links, crawl, summarize.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgallion1/syllafetch/internal/links"
)

// Searcher returns a raw text search response for an exam name, or an
// empty string when the search found nothing.
type Searcher interface {
	Search(ctx context.Context, examName string) (string, error)
}

// Crawler returns a cleaned syllabus extraction from one page.
type Crawler interface {
	Crawl(ctx context.Context, pageURL, examName string) (string, error)
}

// Summarizer merges gathered syllabus text into the model's raw output.
// An empty model selects the summarizer's default.
type Summarizer interface {
	Summarize(ctx context.Context, gathered, examName, model string) (string, error)
}

// ProgressSink receives stage notifications in strict step order.
type ProgressSink interface {
	Progress(stage JobStatus, message string)
}

// ProgressFunc adapts a function to ProgressSink.
type ProgressFunc func(stage JobStatus, message string)

func (f ProgressFunc) Progress(stage JobStatus, message string) { f(stage, message) }

// NoSyllabusMessage is shown to the user when the search step finds nothing.
const NoSyllabusMessage = "No relevant syllabus found."

// ErrNoSyllabus reports that the search step produced no usable response.
var ErrNoSyllabus = errors.New("no relevant syllabus found")

// DefaultMaxCrawlLinks bounds crawling cost per fetch.
const DefaultMaxCrawlLinks = 2

// Fetcher orchestrates one syllabus fetch end to end. Every step blocks
// on the previous one; crawls run one link at a time.
type Fetcher struct {
	search     Searcher
	crawler    Crawler
	summarizer Summarizer
	maxLinks   int
	log        *slog.Logger
}

func NewFetcher(search Searcher, crawler Crawler, summarizer Summarizer, maxLinks int, log *slog.Logger) *Fetcher {
	if maxLinks <= 0 {
		maxLinks = DefaultMaxCrawlLinks
	}
	return &Fetcher{
		search:     search,
		crawler:    crawler,
		summarizer: summarizer,
		maxLinks:   maxLinks,
		log:        log,
	}
}

// FetchSyllabus runs the pipeline for examName and returns the
// summarizer's raw output. The caller parses it with
// summarize.ParseSyllabus. An empty model uses the summarizer's
// default. Returns ErrNoSyllabus when the search step yields nothing;
// crawl failures are skipped, not fatal.
func (f *Fetcher) FetchSyllabus(ctx context.Context, examName, model string, sink ProgressSink) (string, error) {
	if sink == nil {
		sink = ProgressFunc(func(JobStatus, string) {})
	}

	sink.Progress(StatusSearching, "Searching for syllabus...")
	searchText, err := f.search.Search(ctx, examName)
	if err != nil {
		return "", fmt.Errorf("search: %w", err)
	}
	if strings.TrimSpace(searchText) == "" {
		return "", ErrNoSyllabus
	}

	urls := links.Extract(searchText)

	// With no links to follow, the raw search response is all we have.
	var gathered strings.Builder
	if len(urls) == 0 {
		gathered.WriteString(searchText)
	}
	if len(urls) > f.maxLinks {
		urls = urls[:f.maxLinks]
	}

	for _, u := range urls {
		sink.Progress(StatusCrawling, "Crawling: "+u)
		text, err := f.crawler.Crawl(ctx, u, examName)
		if err != nil {
			f.log.Warn("crawl failed, skipping", "url", u, "exam", examName, "error", err)
			continue
		}
		if text == "" {
			continue
		}
		fmt.Fprintf(&gathered, "Syllabus from %s: %s\n\n", u, text)
	}

	sink.Progress(StatusSummarizing, "Summarizing syllabus...")
	out, err := f.summarizer.Summarize(ctx, gathered.String(), examName, model)
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	return out, nil
}
