package crawl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const firecrawlBaseURL = "https://api.firecrawl.dev"

// FirecrawlClient scrapes pages through the Firecrawl API. Main-content
// extraction keeps the syllabus body and drops navigation, promotions,
// and page chrome.
type FirecrawlClient struct {
	baseURL    string
	apiKey     string
	maxBytes   int
	httpClient *http.Client
}

func NewFirecrawlClient(apiKey string, timeout time.Duration, maxBytes int) *FirecrawlClient {
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxTextBytes
	}
	return &FirecrawlClient{
		baseURL:  firecrawlBaseURL,
		apiKey:   apiKey,
		maxBytes: maxBytes,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type scrapeRequest struct {
	URL             string   `json:"url"`
	Formats         []string `json:"formats"`
	OnlyMainContent bool     `json:"onlyMainContent"`
	ExcludeTags     []string `json:"excludeTags,omitempty"`
}

type scrapeResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Markdown string `json:"markdown"`
		Metadata struct {
			Title      string `json:"title"`
			StatusCode int    `json:"statusCode"`
		} `json:"metadata"`
	} `json:"data"`
	Error string `json:"error"`
}

// Crawl requests a markdown rendering of pageURL with promotional and
// navigational elements excluded.
func (c *FirecrawlClient) Crawl(ctx context.Context, pageURL, examName string) (string, error) {
	reqBody := scrapeRequest{
		URL:             pageURL,
		Formats:         []string{"markdown"},
		OnlyMainContent: true,
		ExcludeTags:     []string{"nav", "footer", "aside", "form", "iframe"},
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal scrape request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/scrape", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("firecrawl: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("firecrawl status %d: %s", resp.StatusCode, string(respBody))
	}

	var payload scrapeResponse
	if err := json.Unmarshal(respBody, &payload); err != nil {
		return "", fmt.Errorf("decode firecrawl response: %w", err)
	}
	if !payload.Success {
		return "", fmt.Errorf("firecrawl scrape of %s failed: %s", pageURL, payload.Error)
	}

	text := clampText(payload.Data.Markdown, c.maxBytes)
	if text == "" {
		return "", fmt.Errorf("page %s produced no content for exam %s", pageURL, examName)
	}
	return text, nil
}
