package testutils

import (
	"time"

	"staffing-dashboard/internal/database/models"

	"github.com/shopspring/decimal"
)

// Day parses a YYYY-MM-DD literal and panics on malformed input
func Day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// StaffingRecordFactory provides methods to create test StaffingRecord data
type StaffingRecordFactory struct{}

// NewStaffingRecordFactory creates a new StaffingRecordFactory
func NewStaffingRecordFactory() *StaffingRecordFactory {
	return &StaffingRecordFactory{}
}

// Create creates a test StaffingRecord with default values
func (f *StaffingRecordFactory) Create() models.StaffingRecord {
	return f.Row("2026-06-01", "A", 10, 8, -2)
}

// Row creates a StaffingRecord from literal values in view column order
func (f *StaffingRecordFactory) Row(day, depot string, requested, netAvailable, gap int64) models.StaffingRecord {
	return models.StaffingRecord{
		Day:             Day(day),
		Depot:           depot,
		RequestedShifts: decimal.NewFromInt(requested),
		NetAvailable:    decimal.NewFromInt(netAvailable),
		Gap:             decimal.NewFromInt(gap),
	}
}

// ExampleDataset returns the three-row dataset used throughout the pipeline tests
func (f *StaffingRecordFactory) ExampleDataset() []models.StaffingRecord {
	return []models.StaffingRecord{
		f.Row("2026-06-01", "A", 10, 8, -2),
		f.Row("2026-06-01", "B", 5, 5, 0),
		f.Row("2026-06-02", "A", 4, 6, 2),
	}
}

// StaffingShiftFactory provides methods to create test StaffingShift data
type StaffingShiftFactory struct{}

// NewStaffingShiftFactory creates a new StaffingShiftFactory
func NewStaffingShiftFactory() *StaffingShiftFactory {
	return &StaffingShiftFactory{}
}

// Create creates a test StaffingShift with default values
func (f *StaffingShiftFactory) Create() models.StaffingShift {
	return f.Row("2026-06-01", "A", 10, 9, 1)
}

// Row creates a StaffingShift; the default view derives net available as
// headcount - absences and gap as net available - requested.
func (f *StaffingShiftFactory) Row(day, depot string, requested, headcount, absences int64) models.StaffingShift {
	return models.StaffingShift{
		Day:             Day(day),
		Depot:           depot,
		RequestedShifts: decimal.NewFromInt(requested),
		Headcount:       decimal.NewFromInt(headcount),
		Absences:        decimal.NewFromInt(absences),
	}
}

// FactorySet groups all factories for convenience
type FactorySet struct {
	StaffingRecord *StaffingRecordFactory
	StaffingShift  *StaffingShiftFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		StaffingRecord: NewStaffingRecordFactory(),
		StaffingShift:  NewStaffingShiftFactory(),
	}
}
