// Package cache holds the loaded staffing dataset between interactions.
package cache

import (
	"context"
	"sync"
	"time"

	"staffing-dashboard/internal/database/models"

	"golang.org/x/sync/singleflight"
)

// Dataset is an immutable loaded record set and the time it was read.
// Callers must not modify Records.
type Dataset struct {
	Key      string
	Records  []models.StaffingRecord
	LoadedAt time.Time
}

// DefaultLoadTimeout bounds a shared load, which is not tied to any request
const DefaultLoadTimeout = 30 * time.Second

// LoadFunc reads the full record set from the data source
type LoadFunc func(ctx context.Context) ([]models.StaffingRecord, error)

// DatasetCache keeps one Dataset per data-source identity.
// A ttl of zero keeps entries until Invalidate or InvalidateAll.
type DatasetCache struct {
	ttl         time.Duration
	loadTimeout time.Duration
	now         func() time.Time
	group       singleflight.Group

	mu      sync.RWMutex
	entries map[string]*Dataset
}

// NewDatasetCache creates a cache with the given ttl
func NewDatasetCache(ttl time.Duration) *DatasetCache {
	return &DatasetCache{
		ttl:         ttl,
		loadTimeout: DefaultLoadTimeout,
		now:         time.Now,
		entries:     make(map[string]*Dataset),
	}
}

// WithClock replaces the clock used for load timestamps and expiry
func (c *DatasetCache) WithClock(now func() time.Time) *DatasetCache {
	c.now = now
	return c
}

// WithLoadTimeout replaces the deadline applied to a shared load
func (c *DatasetCache) WithLoadTimeout(d time.Duration) *DatasetCache {
	c.loadTimeout = d
	return c
}

// Get returns the cached dataset for key, calling load on a miss or after
// expiry. Concurrent misses share a single load; failed loads are not stored.
func (c *DatasetCache) Get(ctx context.Context, key string, load LoadFunc) (*Dataset, error) {
	if ds, ok := c.Peek(key); ok {
		return ds, nil
	}

	// The shared load belongs to no single caller; each caller stops waiting
	// on its own ctx while the load runs to completion or loadTimeout.
	ch := c.group.DoChan(key, func() (interface{}, error) {
		if ds, ok := c.Peek(key); ok {
			return ds, nil
		}

		loadCtx, cancel := context.WithTimeout(context.Background(), c.loadTimeout)
		defer cancel()

		records, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		if records == nil {
			records = []models.StaffingRecord{}
		}

		ds := &Dataset{Key: key, Records: records, LoadedAt: c.now()}
		c.mu.Lock()
		c.entries[key] = ds
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
		return res.Val.(*Dataset), nil
	}
}

// Peek returns the cached dataset for key without loading
func (c *DatasetCache) Peek(key string) (*Dataset, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ds, ok := c.entries[key]
	if !ok || c.expiredUnsafe(ds) {
		return nil, false
	}
	return ds, true
}

// Invalidate drops the entry for key
func (c *DatasetCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// InvalidateAll drops every entry
func (c *DatasetCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*Dataset)
}

// Len returns the number of live entries
func (c *DatasetCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, ds := range c.entries {
		if !c.expiredUnsafe(ds) {
			n++
		}
	}
	return n
}

// expiredUnsafe assumes c.mu is held
func (c *DatasetCache) expiredUnsafe(ds *Dataset) bool {
	return c.ttl > 0 && c.now().Sub(ds.LoadedAt) >= c.ttl
}
