package repository

import (
	"context"
	"fmt"
	"time"

	"staffing-dashboard/internal/database/models"

	"gorm.io/gorm"
)

// StaffingShiftRepository handles writes to the base table behind the default
// staffing view. Only the seed script and tests use it.
type StaffingShiftRepository struct {
	db *gorm.DB
}

// NewStaffingShiftRepository creates a new staffing shift repository
func NewStaffingShiftRepository(db *gorm.DB) *StaffingShiftRepository {
	return &StaffingShiftRepository{db: db}
}

const shiftBatchSize = 500

// CreateBatch inserts shifts in batches of 500
func (r *StaffingShiftRepository) CreateBatch(ctx context.Context, shifts []models.StaffingShift) error {
	return createShifts(r.db.WithContext(ctx), shifts)
}

// DeleteRange removes the shifts of depot between from and to inclusive; an
// empty depot matches every depot.
func (r *StaffingShiftRepository) DeleteRange(ctx context.Context, depot string, from, to time.Time) (int64, error) {
	return deleteShiftRange(r.db.WithContext(ctx), depot, from, to)
}

// ReplaceShifts deletes, per depot, the stored days between the first and last
// day of that depot in shifts, then inserts shifts. Both steps run in one
// transaction, so a failed insert leaves the table as it was.
func (r *StaffingShiftRepository) ReplaceShifts(ctx context.Context, shifts []models.StaffingShift) (int64, error) {
	var removed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		removed = 0
		for depot, span := range depotSpans(shifts) {
			n, err := deleteShiftRange(tx, depot, span.from, span.to)
			if err != nil {
				return fmt.Errorf("clear %s: %w", depot, err)
			}
			removed += n
		}
		if err := createShifts(tx, shifts); err != nil {
			return fmt.Errorf("insert shifts: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

type daySpan struct {
	from, to time.Time
}

func depotSpans(shifts []models.StaffingShift) map[string]daySpan {
	spans := make(map[string]daySpan)
	for _, shift := range shifts {
		span, ok := spans[shift.Depot]
		if !ok {
			span = daySpan{from: shift.Day, to: shift.Day}
		}
		if shift.Day.Before(span.from) {
			span.from = shift.Day
		}
		if shift.Day.After(span.to) {
			span.to = shift.Day
		}
		spans[shift.Depot] = span
	}
	return spans
}

func createShifts(db *gorm.DB, shifts []models.StaffingShift) error {
	if len(shifts) == 0 {
		return nil
	}
	return db.CreateInBatches(shifts, shiftBatchSize).Error
}

func deleteShiftRange(db *gorm.DB, depot string, from, to time.Time) (int64, error) {
	query := db.Where("giorno >= ? AND giorno <= ?", models.DateOnly(from), models.DateOnly(to))
	if depot != "" {
		query = query.Where("deposito = ?", depot)
	}
	result := query.Delete(&models.StaffingShift{})
	return result.RowsAffected, result.Error
}

// Count returns the number of stored shifts
func (r *StaffingShiftRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.StaffingShift{}).Count(&total).Error
	return total, err
}
