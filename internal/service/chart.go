package service

import (
	"staffing-dashboard/internal/database/models"
)

// Series identifiers, named after the view columns
const (
	SeriesRequestedShifts = "turni_richiesti"
	SeriesNetAvailable    = "disponibili_netti"
	SeriesGap             = "gap"
)

// ChartSeries is one trace of the combined chart
type ChartSeries struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Type   string    `json:"type"` // "line" or "bar"
	Values []float64 `json:"values"`
	Colors []string  `json:"colors,omitempty"`
}

// ChartResponse is the combined chart: two lines and one signed bar series on a shared day axis
type ChartResponse struct {
	Days      []string      `json:"days"`
	Series    []ChartSeries `json:"series"`
	HoverMode string        `json:"hover_mode"`
}

// TableRow is one row of the detail table
type TableRow struct {
	Day             string  `json:"giorno"`
	RequestedShifts float64 `json:"turni_richiesti"`
	NetAvailable    float64 `json:"disponibili_netti"`
	Gap             float64 `json:"gap"`
	Status          string  `json:"status"`
}

// BuildChart projects aggregates onto the chart. Each gap bar is colored by
// the sign of that day's gap.
func BuildChart(aggs []DailyAggregate) ChartResponse {
	days := make([]string, len(aggs))
	requested := make([]float64, len(aggs))
	available := make([]float64, len(aggs))
	gaps := make([]float64, len(aggs))
	colors := make([]string, len(aggs))

	for i, a := range aggs {
		days[i] = a.Day.Format(DateLayout)
		requested[i] = a.RequestedShifts.InexactFloat64()
		available[i] = a.NetAvailable.InexactFloat64()
		gaps[i] = a.Gap.InexactFloat64()
		colors[i] = models.GapStatusFor(a.Gap).Color()
	}

	return ChartResponse{
		Days: days,
		Series: []ChartSeries{
			{ID: SeriesRequestedShifts, Name: "Turni richiesti", Type: "line", Values: requested},
			{ID: SeriesNetAvailable, Name: "Disponibili netti", Type: "line", Values: available},
			{ID: SeriesGap, Name: "Gap", Type: "bar", Values: gaps, Colors: colors},
		},
		HoverMode: "x unified",
	}
}

// BuildTable projects aggregates onto table rows, one per day
func BuildTable(aggs []DailyAggregate) []TableRow {
	rows := make([]TableRow, len(aggs))
	for i, a := range aggs {
		rows[i] = toTableRow(a)
		rows[i].Day = a.Day.Format(DateLayout)
	}
	return rows
}

func toTableRow(a DailyAggregate) TableRow {
	return TableRow{
		RequestedShifts: a.RequestedShifts.InexactFloat64(),
		NetAvailable:    a.NetAvailable.InexactFloat64(),
		Gap:             a.Gap.InexactFloat64(),
		Status:          string(models.GapStatusFor(a.Gap)),
	}
}
