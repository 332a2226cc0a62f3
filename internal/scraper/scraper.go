package scraper

import (
	"context"
)

// Fetcher retrieves the body of a URL. Satisfied by *Client; tests may
// substitute a fake.
type Fetcher interface {
	Get(ctx context.Context, url string) (string, error)
}
