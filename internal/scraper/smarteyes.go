package scraper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nrvrek/smarteyes-scraper/internal/config"
	"github.com/nrvrek/smarteyes-scraper/internal/models"
	"github.com/nrvrek/smarteyes-scraper/internal/parser"
	"github.com/nrvrek/smarteyes-scraper/internal/ratelimit"
)

// DimensionScraper visits each product page and extracts the frame
// measurements. Every href yields exactly one row, even when no field
// could be parsed for it.
type DimensionScraper struct {
	client  Fetcher
	limiter *ratelimit.Limiter
	logger  *slog.Logger
	baseURL string
}

func NewDimensionScraper(client Fetcher, limiter *ratelimit.Limiter, cfg config.ScraperConfig, logger *slog.Logger) *DimensionScraper {
	return &DimensionScraper{
		client:  client,
		limiter: limiter,
		logger:  logger.With("component", "dimension_scraper"),
		baseURL: cfg.ProductBaseURL,
	}
}

// ScrapeAll processes the hrefs in order and returns one Measurements row
// per href. Structural mismatches and invalid pairs degrade to missing
// fields; fetch errors abort the run.
func (s *DimensionScraper) ScrapeAll(ctx context.Context, hrefs []string) ([]*models.Measurements, error) {
	rows := make([]*models.Measurements, 0, len(hrefs))

	for i, href := range hrefs {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		productURL := s.baseURL + href
		s.logger.Info("scraping product", "item", i+1, "total", len(hrefs), "url", productURL)

		// The URL is recorded before parsing so the row survives any
		// recoverable extraction failure.
		row := models.NewMeasurements(productURL)
		rows = append(rows, row)

		html, err := s.client.Get(ctx, productURL)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch product page %s: %w", href, err)
		}

		pairs, err := parser.ParseProductPage(html)
		if err != nil {
			if errors.Is(err, parser.ErrPairCountMismatch) {
				s.logger.Warn("skipping product measurements", "href", href, "error", err)
				continue
			}
			return nil, fmt.Errorf("failed to parse product page %s: %w", href, err)
		}

		s.extractPairs(row, href, pairs)
	}

	return rows, nil
}

// extractPairs validates each property/measurement pair and stores the
// valid ones on the row. Invalid pairs are skipped individually so their
// siblings survive.
func (s *DimensionScraper) extractPairs(row *models.Measurements, href string, pairs []parser.PropertyPair) {
	for _, pair := range pairs {
		key := parser.NormalizeFieldKey(pair.Name)

		mm, err := parser.ParseMillimeters(pair.Value)
		if err != nil {
			s.logger.Warn("invalid measurement value", "href", href, "key", key, "value", pair.Value)
			continue
		}

		if !row.Set(key, mm) {
			s.logger.Warn("unknown measurement key", "href", href, "key", key, "value", pair.Value)
		}
	}
}
