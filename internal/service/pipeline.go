package service

import (
	"sort"
	"time"

	"staffing-dashboard/internal/database/models"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of calendar days
const DateLayout = "2006-01-02"

// DepotSet is a set of depot identifiers. An empty set selects nothing.
type DepotSet map[string]struct{}

// NewDepotSet builds a set from depot names
func NewDepotSet(depots ...string) DepotSet {
	set := make(DepotSet, len(depots))
	for _, d := range depots {
		set[d] = struct{}{}
	}
	return set
}

// Contains reports whether depot is selected
func (s DepotSet) Contains(depot string) bool {
	_, ok := s[depot]
	return ok
}

// Sorted returns the selected depots in ascending order
func (s DepotSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// DateInterval is an inclusive range of calendar days. An interval whose
// Start is after its End contains no day.
type DateInterval struct {
	Start time.Time
	End   time.Time
}

// NewDateInterval normalizes both ends to calendar days
func NewDateInterval(start, end time.Time) DateInterval {
	return DateInterval{Start: models.DateOnly(start), End: models.DateOnly(end)}
}

// Contains reports whether day lies within the interval, ends included
func (i DateInterval) Contains(day time.Time) bool {
	day = models.DateOnly(day)
	return !day.Before(i.Start) && !day.After(i.End)
}

// FilterBounds seeds the default filter from a loaded dataset
type FilterBounds struct {
	Depots []string
	MinDay time.Time
	MaxDay time.Time
	Empty  bool
}

// FilterState is the filter of one interaction
type FilterState struct {
	SelectedDepots DepotSet
	Interval       DateInterval
}

// DailyAggregate holds the per-day sums of the three measures
type DailyAggregate struct {
	Day             time.Time
	RequestedShifts decimal.Decimal
	NetAvailable    decimal.Decimal
	Gap             decimal.Decimal
}

// ResolveFilterBounds returns the distinct depots (sorted) and the min and max
// day of records. For an empty record set it returns Empty with no depots.
func ResolveFilterBounds(records []models.StaffingRecord) FilterBounds {
	if len(records) == 0 {
		return FilterBounds{Depots: []string{}, Empty: true}
	}

	depots := make(DepotSet)
	minDay := models.DateOnly(records[0].Day)
	maxDay := minDay
	for _, r := range records {
		depots[r.Depot] = struct{}{}
		day := models.DateOnly(r.Day)
		if day.Before(minDay) {
			minDay = day
		}
		if day.After(maxDay) {
			maxDay = day
		}
	}

	return FilterBounds{
		Depots: depots.Sorted(),
		MinDay: minDay,
		MaxDay: maxDay,
	}
}

// DefaultFilter selects every depot over the full [MinDay, MaxDay] span
func (b FilterBounds) DefaultFilter() FilterState {
	return FilterState{
		SelectedDepots: NewDepotSet(b.Depots...),
		Interval:       DateInterval{Start: b.MinDay, End: b.MaxDay},
	}
}

// ApplyFilters keeps the records whose depot is selected and whose day lies in
// the interval, preserving input order. It never returns nil.
func ApplyFilters(records []models.StaffingRecord, depots DepotSet, interval DateInterval) []models.StaffingRecord {
	filtered := make([]models.StaffingRecord, 0, len(records))
	if len(depots) == 0 {
		return filtered
	}
	for _, r := range records {
		if depots.Contains(r.Depot) && interval.Contains(r.Day) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// AggregateByDay sums requested shifts, net available and gap per day. The
// three sums are independent; gap is never recomputed from the other two.
// The result is strictly ascending by day and never nil.
func AggregateByDay(records []models.StaffingRecord) []DailyAggregate {
	byDay := make(map[time.Time]*DailyAggregate)
	for _, r := range records {
		day := models.DateOnly(r.Day)
		agg, ok := byDay[day]
		if !ok {
			agg = &DailyAggregate{
				Day:             day,
				RequestedShifts: decimal.Zero,
				NetAvailable:    decimal.Zero,
				Gap:             decimal.Zero,
			}
			byDay[day] = agg
		}
		agg.RequestedShifts = agg.RequestedShifts.Add(r.RequestedShifts)
		agg.NetAvailable = agg.NetAvailable.Add(r.NetAvailable)
		agg.Gap = agg.Gap.Add(r.Gap)
	}

	out := make([]DailyAggregate, 0, len(byDay))
	for _, agg := range byDay {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out
}

// SumAggregates totals each measure over the aggregate sequence
func SumAggregates(aggs []DailyAggregate) DailyAggregate {
	total := DailyAggregate{
		RequestedShifts: decimal.Zero,
		NetAvailable:    decimal.Zero,
		Gap:             decimal.Zero,
	}
	for _, a := range aggs {
		total.RequestedShifts = total.RequestedShifts.Add(a.RequestedShifts)
		total.NetAvailable = total.NetAvailable.Add(a.NetAvailable)
		total.Gap = total.Gap.Add(a.Gap)
	}
	return total
}
