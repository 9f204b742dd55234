package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"staffing-dashboard/internal/cache"
	"staffing-dashboard/internal/database/models"
	apperrors "staffing-dashboard/internal/errors"
	"staffing-dashboard/internal/logger"
	"staffing-dashboard/internal/repository"

	"github.com/go-playground/validator/v10"
)

// StaffingService runs the staffing report pipeline
type StaffingService struct {
	repo      repository.StaffingRepositoryInterface
	cache     *cache.DatasetCache
	validator *validator.Validate
}

// NewStaffingService creates a new staffing service
func NewStaffingService(repo repository.StaffingRepositoryInterface, datasetCache *cache.DatasetCache, validator *validator.Validate) *StaffingService {
	return &StaffingService{
		repo:      repo,
		cache:     datasetCache,
		validator: validator,
	}
}

// FilterRequest carries the user's filter controls. DepotsSet distinguishes
// "no depot parameter" (all depots) from an explicit, possibly empty, selection.
type FilterRequest struct {
	Depots    []string `json:"depots" validate:"dive,max=64"`
	DepotsSet bool     `json:"-"`
	From      string   `json:"from,omitempty" validate:"omitempty,datetime=2006-01-02"`
	To        string   `json:"to,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// FilterBoundsResponse describes the selectable filter domain
type FilterBoundsResponse struct {
	Depots []string `json:"depots"`
	MinDay string   `json:"min_day,omitempty"`
	MaxDay string   `json:"max_day,omitempty"`
	Empty  bool     `json:"empty"`
}

// FilterStateResponse echoes the filter that was applied
type FilterStateResponse struct {
	Depots []string `json:"depots"`
	From   string   `json:"from,omitempty"`
	To     string   `json:"to,omitempty"`
}

// ReportResponse is everything a dashboard render needs
type ReportResponse struct {
	Bounds      FilterBoundsResponse `json:"bounds"`
	Filter      FilterStateResponse  `json:"filter"`
	RecordCount int                  `json:"record_count"`
	Totals      TableRow             `json:"totals"`
	Chart       ChartResponse        `json:"chart"`
	Table       []TableRow           `json:"table"`
	LoadedAt    time.Time            `json:"loaded_at"`
}

// Report is the computed pipeline result before projection
type Report struct {
	Bounds      FilterBounds
	Filter      FilterState
	Filtered    []models.StaffingRecord
	Aggregates  []DailyAggregate
	Totals      DailyAggregate
	LoadedAt    time.Time
	hasInterval bool
}

// LoadDataset returns the cached record set, querying the view on a miss
func (s *StaffingService) LoadDataset(ctx context.Context) (*cache.Dataset, error) {
	log := logger.WithContext(ctx).WithField("view", s.repo.View())

	ds, err := s.cache.Get(ctx, s.repo.Source(), func(ctx context.Context) ([]models.StaffingRecord, error) {
		started := time.Now()
		records, err := s.repo.LoadAll(ctx)
		if err != nil {
			return nil, err
		}
		log.WithFields(map[string]interface{}{
			"rows":        len(records),
			"duration_ms": time.Since(started).Milliseconds(),
		}).Info("Loaded staffing dataset")
		return records, nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to load staffing dataset")
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	return ds, nil
}

// Compute runs load, filter and aggregate for req
func (s *StaffingService) Compute(ctx context.Context, req *FilterRequest) (*Report, error) {
	if req == nil {
		req = &FilterRequest{}
	}
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	ds, err := s.LoadDataset(ctx)
	if err != nil {
		return nil, err
	}

	bounds := ResolveFilterBounds(ds.Records)
	filter, hasInterval, err := resolveFilter(bounds, req)
	if err != nil {
		return nil, err
	}

	filtered := ApplyFilters(ds.Records, filter.SelectedDepots, filter.Interval)
	aggs := AggregateByDay(filtered)

	return &Report{
		Bounds:      bounds,
		Filter:      filter,
		Filtered:    filtered,
		Aggregates:  aggs,
		Totals:      SumAggregates(aggs),
		LoadedAt:    ds.LoadedAt,
		hasInterval: hasInterval,
	}, nil
}

// BuildReport computes the report for req and projects it for display
func (s *StaffingService) BuildReport(ctx context.Context, req *FilterRequest) (*ReportResponse, error) {
	report, err := s.Compute(ctx, req)
	if err != nil {
		return nil, err
	}
	return report.ToResponse(), nil
}

// ToResponse projects the report onto chart, table and echo fields
func (r *Report) ToResponse() *ReportResponse {
	bounds := FilterBoundsResponse{Depots: r.Bounds.Depots, Empty: r.Bounds.Empty}
	if !r.Bounds.Empty {
		bounds.MinDay = r.Bounds.MinDay.Format(DateLayout)
		bounds.MaxDay = r.Bounds.MaxDay.Format(DateLayout)
	}

	filter := FilterStateResponse{Depots: r.Filter.SelectedDepots.Sorted()}
	if r.hasInterval {
		filter.From = r.Filter.Interval.Start.Format(DateLayout)
		filter.To = r.Filter.Interval.End.Format(DateLayout)
	}

	totals := toTableRow(r.Totals)

	return &ReportResponse{
		Bounds:      bounds,
		Filter:      filter,
		RecordCount: len(r.Filtered),
		Totals:      totals,
		Chart:       BuildChart(r.Aggregates),
		Table:       BuildTable(r.Aggregates),
		LoadedAt:    r.LoadedAt,
	}
}

func (s *StaffingService) validateRequest(req *FilterRequest) error {
	if err := s.validator.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			fe := validationErrs[0]
			return apperrors.NewValidationError(fe.Field(), fmt.Sprintf("failed on %q", fe.Tag()))
		}
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// resolveFilter fills unset controls from bounds. The returned flag is false
// when neither the request nor the dataset provides an interval.
func resolveFilter(bounds FilterBounds, req *FilterRequest) (FilterState, bool, error) {
	filter := bounds.DefaultFilter()
	if req.DepotsSet {
		selected := make([]string, 0, len(req.Depots))
		for _, d := range req.Depots {
			if d != "" {
				selected = append(selected, d)
			}
		}
		filter.SelectedDepots = NewDepotSet(selected...)
	}

	hasInterval := !bounds.Empty
	if req.From != "" {
		from, err := time.Parse(DateLayout, req.From)
		if err != nil {
			return FilterState{}, false, apperrors.NewValidationError("from", apperrors.ErrInvalidDateFormat.Error())
		}
		filter.Interval.Start = from
	}
	if req.To != "" {
		to, err := time.Parse(DateLayout, req.To)
		if err != nil {
			return FilterState{}, false, apperrors.NewValidationError("to", apperrors.ErrInvalidDateFormat.Error())
		}
		filter.Interval.End = to
	}
	if bounds.Empty && (req.From == "" || req.To == "") {
		// Nothing to select anyway; keep the interval vacuous
		return FilterState{SelectedDepots: filter.SelectedDepots}, false, nil
	}
	if req.From != "" || req.To != "" {
		hasInterval = true
	}

	filter.Interval = NewDateInterval(filter.Interval.Start, filter.Interval.End)
	return filter, hasInterval, nil
}
