package ratelimit

import (
	"context"
	"time"
)

// Limiter spaces sequential requests a fixed delay apart. The pipeline is
// single-threaded, so Wait is not safe for concurrent use. A zero delay
// makes Wait a no-op, which matches the reference timing.
type Limiter struct {
	delay      time.Duration
	lastAction time.Time
}

func New(delay time.Duration) *Limiter {
	return &Limiter{delay: delay}
}

func (l *Limiter) Wait(ctx context.Context) error {
	if l.delay > 0 && !l.lastAction.IsZero() {
		elapsed := time.Since(l.lastAction)
		if elapsed < l.delay {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(l.delay - elapsed):
			}
		}
	}

	l.lastAction = time.Now()
	return nil
}
