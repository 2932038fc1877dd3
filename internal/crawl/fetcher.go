package crawl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

const (
	fetchUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	maxDownload    = 8 << 20 // raw download cap before text extraction
)

// Fetcher downloads a page directly and extracts readable text. Used when
// no Firecrawl API key is configured. Syllabus pages come in three shapes
// in practice: HTML pages, PDF documents, and the occasional DOCX upload.
type Fetcher struct {
	maxBytes   int
	httpClient *http.Client
	log        *slog.Logger
}

func NewFetcher(timeout time.Duration, maxBytes int, log *slog.Logger) *Fetcher {
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxTextBytes
	}
	return &Fetcher{
		maxBytes: maxBytes,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Crawl downloads pageURL and returns its readable text, truncated to the
// configured byte budget.
func (f *Fetcher) Crawl(ctx context.Context, pageURL, examName string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", fetchUserAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: status %d", pageURL, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDownload))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", pageURL, err)
	}

	kind := contentKind(resp.Header.Get("Content-Type"), pageURL)
	f.log.Info("crawled page", "url", pageURL, "exam", examName, "kind", kind, "bytes", len(data))

	var text string
	switch kind {
	case "pdf":
		text, err = extractPDFText(data)
	case "docx":
		text, err = extractDOCXText(data)
	default:
		text, err = readableText(data)
	}
	if err != nil {
		return "", fmt.Errorf("extract %s text from %s: %w", kind, pageURL, err)
	}

	text = clampText(text, f.maxBytes)
	if text == "" {
		return "", fmt.Errorf("page %s produced no readable text", pageURL)
	}
	return text, nil
}

// contentKind picks the extraction strategy from the Content-Type header,
// falling back to the URL path extension.
func contentKind(contentType, pageURL string) string {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "application/pdf"):
		return "pdf"
	case strings.Contains(ct, "officedocument.wordprocessingml"):
		return "docx"
	case strings.Contains(ct, "text/html"):
		return "html"
	}

	if u, err := url.Parse(pageURL); err == nil {
		switch strings.ToLower(path.Ext(u.Path)) {
		case ".pdf":
			return "pdf"
		case ".docx":
			return "docx"
		}
	}
	return "html"
}
