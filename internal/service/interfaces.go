package service

import (
	"context"

	"staffing-dashboard/internal/cache"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// StaffingServiceInterface defines the interface for the staffing report service
type StaffingServiceInterface interface {
	LoadDataset(ctx context.Context) (*cache.Dataset, error)
	BuildReport(ctx context.Context, req *FilterRequest) (*ReportResponse, error)
	ExportXLSX(ctx context.Context, req *FilterRequest) ([]byte, error)
}

var _ StaffingServiceInterface = (*StaffingService)(nil)
