package database

import (
	"fmt"
	"time"

	"staffing-dashboard/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// Initialize opens a Postgres connection and verifies it with a ping.
// The dashboard is read-only, so no migration runs here; see EnsureStaffingSchema.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 4
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 2
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	// Open DB
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}

// EnsureStaffingSchema creates the turni_deposito base table and (re)creates
// the staffing view on top of it. Used by the seed script and tests; the
// dashboard itself never writes.
func EnsureStaffingSchema(db *gorm.DB, view string) error {
	// Required for BaseModel default gen_random_uuid() on Postgres < 13
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	if err := db.AutoMigrate(&models.StaffingShift{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	stmt := fmt.Sprintf(`CREATE OR REPLACE VIEW %s AS
SELECT
	giorno,
	deposito,
	turni_richiesti,
	organico - assenze AS disponibili_netti,
	(organico - assenze) - turni_richiesti AS gap
FROM %s`, view, models.StaffingShift{}.TableName())
	if err := db.Exec(stmt).Error; err != nil {
		return fmt.Errorf("create view %s: %w", view, err)
	}

	return nil
}
