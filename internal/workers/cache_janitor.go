// Package workers holds the background jobs of the client: currently a
// single janitor that prunes expired catalog cache entries.
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/dkrylov/animereview/internal/logger"
)

// Prunable is the slice of the catalog cache the janitor needs: drop
// expired entries and report how many went away.
type Prunable interface {
	PruneExpired() int
}

// CacheJanitor periodically prunes expired entries from a [Prunable]
// cache. Entries that are never re-read would otherwise stay resident
// until process exit. The janitor is idle until Start is called.
type CacheJanitor struct {
	cache  Prunable
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewCacheJanitor(cache Prunable, logger *logger.Logger) *CacheJanitor {
	return &CacheJanitor{cache: cache, logger: logger}
}

// Start stops any previously running janitor, then launches a background
// goroutine that prunes every interval. If interval is zero or negative
// it defaults to 5 minutes. The goroutine exits when ctx is cancelled or
// Stop is called.
func (j *CacheJanitor) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Debug().Str("func", "*CacheJanitor.Start").Dur("interval", interval).Msg("cache janitor started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.cache.PruneExpired()
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has fully
// exited. Safe to call when the janitor is not running.
func (j *CacheJanitor) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
