package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"staffing-dashboard/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const key = "localhost:5432/staffing#v_gap_turni"

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func countingLoader(calls *int32, records []models.StaffingRecord) LoadFunc {
	return func(ctx context.Context) ([]models.StaffingRecord, error) {
		atomic.AddInt32(calls, 1)
		return records, nil
	}
}

func TestDatasetCacheGet(t *testing.T) {
	records := []models.StaffingRecord{{Depot: "A"}, {Depot: "B"}}

	t.Run("second call returns the same dataset without loading", func(t *testing.T) {
		var calls int32
		clock := &fakeClock{t: time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)}
		c := NewDatasetCache(0).WithClock(clock.Now)

		ds1, err := c.Get(context.Background(), key, countingLoader(&calls, records))
		require.NoError(t, err)
		clock.Advance(72 * time.Hour)
		ds2, err := c.Get(context.Background(), key, countingLoader(&calls, records))
		require.NoError(t, err)

		assert.Same(t, ds1, ds2)
		assert.Equal(t, int32(1), calls)
		assert.Equal(t, key, ds1.Key)
		assert.Equal(t, time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC), ds1.LoadedAt)
		assert.Len(t, ds1.Records, 2)
	})

	t.Run("ttl expiry reloads", func(t *testing.T) {
		var calls int32
		clock := &fakeClock{t: time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)}
		c := NewDatasetCache(10 * time.Minute).WithClock(clock.Now)

		_, err := c.Get(context.Background(), key, countingLoader(&calls, records))
		require.NoError(t, err)
		clock.Advance(9 * time.Minute)
		_, err = c.Get(context.Background(), key, countingLoader(&calls, records))
		require.NoError(t, err)
		assert.Equal(t, int32(1), calls)

		clock.Advance(time.Minute)
		_, ok := c.Peek(key)
		assert.False(t, ok)
		ds, err := c.Get(context.Background(), key, countingLoader(&calls, records))
		require.NoError(t, err)
		assert.Equal(t, int32(2), calls)
		assert.Equal(t, clock.Now(), ds.LoadedAt)
	})

	t.Run("failed load is not cached", func(t *testing.T) {
		c := NewDatasetCache(0)
		boom := errors.New("connection refused")

		_, err := c.Get(context.Background(), key, func(ctx context.Context) ([]models.StaffingRecord, error) {
			return nil, boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 0, c.Len())

		var calls int32
		_, err = c.Get(context.Background(), key, countingLoader(&calls, records))
		require.NoError(t, err)
		assert.Equal(t, int32(1), calls)
	})

	t.Run("empty load is cached as an empty dataset", func(t *testing.T) {
		var calls int32
		c := NewDatasetCache(0)

		ds, err := c.Get(context.Background(), key, countingLoader(&calls, nil))
		require.NoError(t, err)
		assert.NotNil(t, ds.Records)
		assert.Empty(t, ds.Records)

		_, err = c.Get(context.Background(), key, countingLoader(&calls, nil))
		require.NoError(t, err)
		assert.Equal(t, int32(1), calls)
	})

	t.Run("keys are independent", func(t *testing.T) {
		var calls int32
		c := NewDatasetCache(0)

		_, err := c.Get(context.Background(), key, countingLoader(&calls, records))
		require.NoError(t, err)
		_, err = c.Get(context.Background(), "other:5432/staffing#v_gap_turni", countingLoader(&calls, records))
		require.NoError(t, err)

		assert.Equal(t, int32(2), calls)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("concurrent misses share one load", func(t *testing.T) {
		var calls int32
		c := NewDatasetCache(0)
		release := make(chan struct{})
		load := func(ctx context.Context) ([]models.StaffingRecord, error) {
			atomic.AddInt32(&calls, 1)
			<-release
			return records, nil
		}

		var wg sync.WaitGroup
		results := make([]*Dataset, 8)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				ds, err := c.Get(context.Background(), key, load)
				assert.NoError(t, err)
				results[i] = ds
			}(i)
		}
		time.Sleep(20 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
		for _, ds := range results {
			assert.Same(t, results[0], ds)
		}
	})
}

func TestDatasetCacheInvalidate(t *testing.T) {
	records := []models.StaffingRecord{{Depot: "A"}}

	t.Run("invalidate one key", func(t *testing.T) {
		var calls int32
		c := NewDatasetCache(0)

		_, _ = c.Get(context.Background(), key, countingLoader(&calls, records))
		c.Invalidate(key)
		_, ok := c.Peek(key)
		assert.False(t, ok)

		_, err := c.Get(context.Background(), key, countingLoader(&calls, records))
		require.NoError(t, err)
		assert.Equal(t, int32(2), calls)
	})

	t.Run("invalidate all", func(t *testing.T) {
		var calls int32
		c := NewDatasetCache(0)

		_, _ = c.Get(context.Background(), "a", countingLoader(&calls, records))
		_, _ = c.Get(context.Background(), "b", countingLoader(&calls, records))
		assert.Equal(t, 2, c.Len())

		c.InvalidateAll()
		assert.Equal(t, 0, c.Len())
	})

	t.Run("cancelled caller does not fail the shared load", func(t *testing.T) {
		var calls int32
		c := NewDatasetCache(0)
		started := make(chan struct{})
		release := make(chan struct{})
		load := func(ctx context.Context) ([]models.StaffingRecord, error) {
			atomic.AddInt32(&calls, 1)
			close(started)
			select {
			case <-release:
				return records, nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		firstCtx, cancelFirst := context.WithCancel(context.Background())
		firstErr := make(chan error, 1)
		go func() {
			_, err := c.Get(firstCtx, key, load)
			firstErr <- err
		}()
		<-started

		second := make(chan *Dataset, 1)
		secondErr := make(chan error, 1)
		go func() {
			ds, err := c.Get(context.Background(), key, load)
			second <- ds
			secondErr <- err
		}()
		time.Sleep(20 * time.Millisecond)

		cancelFirst()
		assert.ErrorIs(t, <-firstErr, context.Canceled)

		close(release)
		require.NoError(t, <-secondErr)
		ds := <-second
		require.NotNil(t, ds)
		assert.Len(t, ds.Records, 2)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

		cached, ok := c.Peek(key)
		assert.True(t, ok)
		assert.Same(t, ds, cached)
	})

	t.Run("shared load is bounded by the load timeout", func(t *testing.T) {
		c := NewDatasetCache(0).WithLoadTimeout(10 * time.Millisecond)

		_, err := c.Get(context.Background(), key, func(ctx context.Context) ([]models.StaffingRecord, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, 0, c.Len())
	})
}
