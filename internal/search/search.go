// Package search finds candidate syllabus pages on the web.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Result is a single hit from a search provider.
type Result struct {
	Title   string
	URL     string
	Snippet string
}

// Provider queries one web-search backend.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string) ([]Result, error)
}

// Agent turns an exam name into a search query and renders the provider's
// hits into one text blob. Links in the blob drive the crawl step.
type Agent struct {
	provider Provider
	log      *slog.Logger
}

func NewAgent(provider Provider, log *slog.Logger) *Agent {
	return &Agent{provider: provider, log: log}
}

// Search runs the fixed syllabus query for examName. It returns an empty
// string when the provider found nothing; provider failures are returned
// as errors.
func (a *Agent) Search(ctx context.Context, examName string) (string, error) {
	query := fmt.Sprintf("fetch the latest syllabus for the exam %s", examName)
	results, err := a.provider.Search(ctx, query)
	if err != nil {
		return "", fmt.Errorf("%s search: %w", a.provider.Name(), err)
	}
	a.log.Info("search complete", "provider", a.provider.Name(), "exam", examName, "results", len(results))
	if len(results) == 0 {
		return "", nil
	}

	var sb strings.Builder
	for _, r := range results {
		if r.Title != "" {
			sb.WriteString(r.Title)
			sb.WriteString("\n")
		}
		sb.WriteString(r.URL)
		sb.WriteString("\n")
		if r.Snippet != "" {
			sb.WriteString(r.Snippet)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String()), nil
}
