package dataset

import (
	"context"
	"sync"
	"time"

	"github.com/JonMunkholm/salarydash/internal/core"
	"golang.org/x/sync/singleflight"
)

// Cache loads a Source at most once per process. Concurrent callers share
// the in-flight load; a failed load is not cached so the next call retries.
//
// The load runs detached from the caller that started it, bounded by the
// cache's own timeout, so one cancelled request does not fail the load for
// everyone waiting on it.
type Cache struct {
	src     Source
	timeout time.Duration
	group   singleflight.Group

	mu sync.RWMutex
	ds core.Dataset
	ok bool
}

// NewCache wraps src. A timeout <= 0 leaves the load unbounded.
func NewCache(src Source, timeout time.Duration) *Cache {
	return &Cache{src: src, timeout: timeout}
}

// Get returns the cached dataset, loading it on first use. It returns
// ctx's error if ctx ends before the shared load does.
func (c *Cache) Get(ctx context.Context) (core.Dataset, error) {
	if ds, ok := c.cached(); ok {
		return ds, nil
	}

	ch := c.group.DoChan(c.src.String(), func() (any, error) {
		if ds, ok := c.cached(); ok {
			return ds, nil
		}

		loadCtx := context.WithoutCancel(ctx)
		if c.timeout > 0 {
			var cancel context.CancelFunc
			loadCtx, cancel = context.WithTimeout(loadCtx, c.timeout)
			defer cancel()
		}

		ds, err := c.src.Load(loadCtx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.ds, c.ok = ds, true
		c.mu.Unlock()
		return ds, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(core.Dataset), nil
	}
}

func (c *Cache) cached() (core.Dataset, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ds, c.ok
}

// Loaded reports whether a dataset is cached.
func (c *Cache) Loaded() bool {
	_, ok := c.cached()
	return ok
}

// Source returns the wrapped source.
func (c *Cache) Source() Source {
	return c.src
}
