// Package counter provides a shared counter whose mutations are
// serialized by an exclusive lock.
package counter

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Counter is a lock-guarded counter safe for concurrent use.
// The zero value is ready to use.
type Counter struct {
	mu sync.Mutex
	n  int64
}

// Inc increments the counter by one inside the lock.
func (c *Counter) Inc() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
}

// Value returns the current count.
func (c *Counter) Value() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

// RunIncrementers launches the given number of workers, each incrementing
// the counter exactly once, and waits for all of them to finish. The lock
// serializes the increments, so the counter grows by exactly the worker
// count; the order in which workers run is unspecified.
func RunIncrementers(ctx context.Context, c *Counter, workers int, logger *slog.Logger) error {
	if workers < 0 {
		return fmt.Errorf("invalid worker count %d", workers)
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "counter")

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			c.Inc()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("incrementers: %w", err)
	}

	logger.Debug("incrementers finished", "workers", workers, "value", c.Value())
	return nil
}
