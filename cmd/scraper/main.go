package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/nrvrek/smarteyes-scraper/internal/config"
	"github.com/nrvrek/smarteyes-scraper/internal/ratelimit"
	"github.com/nrvrek/smarteyes-scraper/internal/scraper"
	"github.com/nrvrek/smarteyes-scraper/internal/storage"
	"github.com/nrvrek/smarteyes-scraper/pkg/logger"
)

func main() {
	var (
		listingURL = flag.String("listing-url", "", "Listing URL to crawl (overrides SMARTEYES_LISTING_URL)")
		output     = flag.String("output", "", "Output CSV path (overrides OUTPUT_PATH)")
		maxPages   = flag.Int("max-pages", 0, "Pagination cap (overrides SCRAPER_MAX_PAGES)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *listingURL != "" {
		cfg.Scraper.ListingURL = *listingURL
	}
	if *output != "" {
		cfg.Output.Path = *output
	}
	if *maxPages > 0 {
		cfg.Scraper.MaxPages = *maxPages
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logger.New(cfg.Logging.Level, cfg.Logging.Format).
		With("run_id", uuid.New().String())
	logger.Info("Starting SmartEyes scraper", "listing_url", cfg.Scraper.ListingURL)

	ctx := context.Background()

	client := scraper.NewClient(cfg.Scraper.UserAgent, cfg.Scraper.HTTPTimeout)
	limiter := ratelimit.New(cfg.Scraper.RequestDelay)

	collector := scraper.NewLinkCollector(client, limiter, cfg.Scraper, logger)
	hrefs, err := collector.CollectLinks(ctx)
	if err != nil {
		logger.Error("Link collection failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Number of glasses found", "count", len(hrefs))

	dimensions := scraper.NewDimensionScraper(client, limiter, cfg.Scraper, logger)
	rows, err := dimensions.ScrapeAll(ctx, hrefs)
	if err != nil {
		logger.Error("Dimension scraping failed", "error", err)
		os.Exit(1)
	}

	writer := storage.NewCSVWriter(cfg.Output.Path, logger)
	if err := writer.Write(rows); err != nil {
		logger.Error("Failed to write output", "error", err)
		os.Exit(1)
	}

	logger.Info("Scraping completed", "products", len(rows), "output", cfg.Output.Path)
}
