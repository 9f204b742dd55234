package repository

import (
	"context"
	"time"

	"staffing-dashboard/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// StaffingRepositoryInterface defines the read path over the staffing view
type StaffingRepositoryInterface interface {
	LoadAll(ctx context.Context) ([]models.StaffingRecord, error)
	View() string
	Source() string
}

// StaffingShiftRepositoryInterface defines write operations on the base table behind the default view
type StaffingShiftRepositoryInterface interface {
	CreateBatch(ctx context.Context, shifts []models.StaffingShift) error
	DeleteRange(ctx context.Context, depot string, from, to time.Time) (int64, error)
	ReplaceShifts(ctx context.Context, shifts []models.StaffingShift) (int64, error)
	Count(ctx context.Context) (int64, error)
}
