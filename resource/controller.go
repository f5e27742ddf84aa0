// Package resource bounds the shared resources of a matcher: how many
// queries may run at once and how often the filesystem may be rescanned.
package resource

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits.
type Config struct {
	// MaxConcurrentQueries is the maximum number of Rank calls allowed to
	// run at once. If 0, defaults to 1.
	MaxConcurrentQueries int64

	// RescanInterval is the minimum time between filesystem rescans.
	// If 0, rescans are not throttled.
	RescanInterval time.Duration
}

// Controller manages query admission and rescan throttling.
// A nil *Controller admits everything.
type Controller struct {
	querySem      *semaphore.Weighted
	rescanLimiter *rate.Limiter // nil if unthrottled
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxConcurrentQueries <= 0 {
		cfg.MaxConcurrentQueries = 1
	}

	c := &Controller{
		querySem: semaphore.NewWeighted(cfg.MaxConcurrentQueries),
	}

	if cfg.RescanInterval > 0 {
		c.rescanLimiter = rate.NewLimiter(rate.Every(cfg.RescanInterval), 1)
	}

	return c
}

// AcquireQuery reserves a query slot, blocking until one is free or ctx is
// canceled.
func (c *Controller) AcquireQuery(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.querySem.Acquire(ctx, 1)
}

// TryAcquireQuery reserves a query slot without blocking.
// Returns true if acquired, false if all slots are busy.
func (c *Controller) TryAcquireQuery() bool {
	if c == nil {
		return true
	}
	return c.querySem.TryAcquire(1)
}

// ReleaseQuery releases a query slot.
func (c *Controller) ReleaseQuery() {
	if c == nil {
		return
	}
	c.querySem.Release(1)
}

// AllowRescan reports whether a rescan may run now under the configured
// rescan interval.
func (c *Controller) AllowRescan() bool {
	if c == nil || c.rescanLimiter == nil {
		return true
	}
	return c.rescanLimiter.Allow()
}
