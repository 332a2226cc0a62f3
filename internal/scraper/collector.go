package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/nrvrek/smarteyes-scraper/internal/config"
	"github.com/nrvrek/smarteyes-scraper/internal/parser"
	"github.com/nrvrek/smarteyes-scraper/internal/ratelimit"
)

// LinkCollector pages through the catalog listing and accumulates relative
// product hrefs until the first page with no product anchors.
type LinkCollector struct {
	client     Fetcher
	limiter    *ratelimit.Limiter
	logger     *slog.Logger
	listingURL string
	maxPages   int
}

func NewLinkCollector(client Fetcher, limiter *ratelimit.Limiter, cfg config.ScraperConfig, logger *slog.Logger) *LinkCollector {
	return &LinkCollector{
		client:     client,
		limiter:    limiter,
		logger:     logger.With("component", "link_collector"),
		listingURL: cfg.ListingURL,
		maxPages:   cfg.MaxPages,
	}
}

// CollectLinks fetches listing pages in increasing order and returns the
// hrefs in traversal order. The first page yielding zero product anchors
// terminates the crawl; any fetch or parse error aborts it.
func (lc *LinkCollector) CollectLinks(ctx context.Context) ([]string, error) {
	pages, err := lc.pageURLs()
	if err != nil {
		return nil, err
	}

	var hrefs []string
	for i, pageURL := range pages {
		if err := lc.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		lc.logger.Info("fetching listing page", "page", i+1, "url", pageURL)

		html, err := lc.client.Get(ctx, pageURL)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch listing page %d: %w", i+1, err)
		}

		pageHrefs, err := parser.ParseListing(html)
		if err != nil {
			return nil, fmt.Errorf("failed to parse listing page %d: %w", i+1, err)
		}

		if len(pageHrefs) == 0 {
			lc.logger.Info("last page reached", "url", pageURL)
			return hrefs, nil
		}

		hrefs = append(hrefs, pageHrefs...)
		lc.logger.Info("collected product links", "page", i+1, "count", len(pageHrefs), "total", len(hrefs))
	}

	// Known truncation risk: the cap is an arbitrary safety bound and there
	// is no signal when the true catalog exceeds it.
	lc.logger.Warn("page cap reached without an empty page, catalog may be truncated", "max_pages", lc.maxPages)
	return hrefs, nil
}

// pageURLs builds the candidate page sequence: the bare listing URL, then
// the listing URL with ?page=2 through ?page=maxPages.
func (lc *LinkCollector) pageURLs() ([]string, error) {
	pages := []string{lc.listingURL}

	for n := 2; n <= lc.maxPages; n++ {
		u, err := url.Parse(lc.listingURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse listing URL %s: %w", lc.listingURL, err)
		}

		q := u.Query()
		q.Set("page", strconv.Itoa(n))
		u.RawQuery = q.Encode()
		pages = append(pages, u.String())
	}

	return pages, nil
}
