package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port string

	// Model invocation
	OpenAIAPIKey  string
	OpenAIModel   string
	AllowedModels []string

	// Search
	SearchProvider string
	TavilyAPIKey   string

	// Crawling
	FirecrawlAPIKey string
	MaxCrawlLinks   int
	CrawlTimeout    time.Duration
	MaxPageBytes    int

	// Optional bearer auth for /api routes
	APIKey string

	// Job handling
	WorkerCount  int
	MaxQueueSize int
	JobTTL       time.Duration
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   envOr("OPENAI_MODEL", "o3-mini"),
		AllowedModels: envList("OPENAI_ALLOWED_MODELS", []string{"o3-mini", "gpt-4o-mini"}),

		SearchProvider: envOr("SEARCH_PROVIDER", "duckduckgo"),
		TavilyAPIKey:   os.Getenv("TAVILY_API_KEY"),

		FirecrawlAPIKey: os.Getenv("FIRECRAWL_API_KEY"),
		MaxCrawlLinks:   envInt("MAX_CRAWL_LINKS", 2),
		CrawlTimeout:    envDuration("CRAWL_TIMEOUT", 45*time.Second),
		MaxPageBytes:    envInt("MAX_PAGE_BYTES", 32*1024),

		APIKey: os.Getenv("SYLLAFETCH_API_KEY"),

		WorkerCount:  envInt("WORKER_COUNT", 2),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 50),
		JobTTL:       envDuration("JOB_TTL", 1*time.Hour),
	}

	if cfg.MaxCrawlLinks <= 0 {
		cfg.MaxCrawlLinks = 2
	}
	if cfg.CrawlTimeout <= 0 {
		cfg.CrawlTimeout = 45 * time.Second
	}
	if cfg.MaxPageBytes <= 0 {
		cfg.MaxPageBytes = 32 * 1024
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 50
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	switch c.SearchProvider {
	case "duckduckgo":
	case "tavily":
		if c.TavilyAPIKey == "" {
			return fmt.Errorf("TAVILY_API_KEY is required when SEARCH_PROVIDER=tavily")
		}
	default:
		return fmt.Errorf("unknown SEARCH_PROVIDER %q (want duckduckgo or tavily)", c.SearchProvider)
	}
	return nil
}

// ModelAllowed reports whether name may be requested per job. The empty
// name and the configured default are always allowed.
func (c Config) ModelAllowed(name string) bool {
	if name == "" || name == c.OpenAIModel {
		return true
	}
	return slices.Contains(c.AllowedModels, name)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
