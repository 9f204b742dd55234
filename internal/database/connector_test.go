package database

import (
	"errors"
	"testing"

	apperrors "staffing-dashboard/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConnector(t *testing.T) {
	t.Run("opens lazily and reuses the handle", func(t *testing.T) {
		calls := 0
		handle := &gorm.DB{}
		c := NewConnector("postgres://x", "db/staffing#v_gap_turni", nil).
			WithOpenFunc(func(dsn string, opts *Options) (*gorm.DB, error) {
				calls++
				assert.Equal(t, "postgres://x", dsn)
				return handle, nil
			})

		assert.Equal(t, 0, calls)

		db1, err := c.DB()
		require.NoError(t, err)
		db2, err := c.DB()
		require.NoError(t, err)

		assert.Same(t, handle, db1)
		assert.Same(t, db1, db2)
		assert.Equal(t, 1, calls)
	})

	t.Run("open failure is a connection error and is retried next time", func(t *testing.T) {
		calls := 0
		c := NewConnector("postgres://x", "db/staffing#v_gap_turni", nil).
			WithOpenFunc(func(dsn string, opts *Options) (*gorm.DB, error) {
				calls++
				if calls == 1 {
					return nil, errors.New("connection refused")
				}
				return &gorm.DB{}, nil
			})

		_, err := c.DB()
		require.Error(t, err)
		assert.True(t, apperrors.IsConnection(err))
		assert.Contains(t, err.Error(), "db/staffing#v_gap_turni")

		_, err = c.DB()
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("close without open is a no-op", func(t *testing.T) {
		c := NewConnector("postgres://x", "src", nil)
		assert.NoError(t, c.Close())
		assert.Equal(t, "src", c.Source())
	})
}
