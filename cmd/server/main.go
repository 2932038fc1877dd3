package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/syllafetch/internal/api"
	"github.com/dgallion1/syllafetch/internal/config"
	"github.com/dgallion1/syllafetch/internal/crawl"
	"github.com/dgallion1/syllafetch/internal/pipeline"
	"github.com/dgallion1/syllafetch/internal/search"
	"github.com/dgallion1/syllafetch/internal/summarize"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize clients.
	var provider search.Provider
	switch cfg.SearchProvider {
	case "tavily":
		provider = search.NewTavily(cfg.TavilyAPIKey)
	default:
		provider = search.NewDuckDuckGo()
	}
	agent := search.NewAgent(provider, log)

	var crawler pipeline.Crawler
	if cfg.FirecrawlAPIKey != "" {
		crawler = crawl.NewFirecrawlClient(cfg.FirecrawlAPIKey, cfg.CrawlTimeout, cfg.MaxPageBytes)
	} else {
		crawler = crawl.NewFetcher(cfg.CrawlTimeout, cfg.MaxPageBytes, log)
	}

	llm := summarize.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)

	// Initialize pipeline.
	fetcher := pipeline.NewFetcher(agent, crawler, llm, cfg.MaxCrawlLinks, log)
	orch := pipeline.NewOrchestrator(cfg, fetcher, log)
	orch.Start(ctx)

	// Initialize HTTP server.
	srv := api.NewServer(orch, llm, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		llm.Close()
	}()

	log.Info("starting syllafetch", "port", cfg.Port, "search_provider", cfg.SearchProvider)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
