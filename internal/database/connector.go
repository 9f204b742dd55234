package database

import (
	"context"
	"sync"

	apperrors "staffing-dashboard/internal/errors"

	"gorm.io/gorm"
)

// OpenFunc opens a database handle; Initialize is the production implementation.
type OpenFunc func(dsn string, opts *Options) (*gorm.DB, error)

// Connector lazily opens the shared database handle on first use and reuses it.
// A failed open is not remembered: the next call tries again.
type Connector struct {
	dsn    string
	source string
	opts   *Options
	open   OpenFunc

	mu sync.Mutex
	db *gorm.DB
}

// NewConnector creates a connector for dsn. source is the credential-free
// identity reported in errors.
func NewConnector(dsn, source string, opts *Options) *Connector {
	return &Connector{
		dsn:    dsn,
		source: source,
		opts:   opts,
		open:   Initialize,
	}
}

// WithOpenFunc replaces the function used to open the handle
func (c *Connector) WithOpenFunc(open OpenFunc) *Connector {
	c.open = open
	return c
}

// Source returns the identity of the data source
func (c *Connector) Source() string {
	return c.source
}

// DB returns the shared handle, opening it if needed
func (c *Connector) DB() (*gorm.DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db, nil
	}

	db, err := c.open(c.dsn, c.opts)
	if err != nil {
		return nil, apperrors.NewConnectionError(c.source, err)
	}
	c.db = db
	return db, nil
}

// Ping checks connectivity, opening the handle if needed
func (c *Connector) Ping(ctx context.Context) error {
	db, err := c.DB()
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return apperrors.NewConnectionError(c.source, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return apperrors.NewConnectionError(c.source, err)
	}
	return nil
}

// Close releases the handle if it was opened
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return nil
	}
	sqlDB, err := c.db.DB()
	c.db = nil
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
