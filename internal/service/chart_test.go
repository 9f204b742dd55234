package service_test

import (
	"testing"

	"staffing-dashboard/internal/database/models"
	"staffing-dashboard/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildChart(t *testing.T) {
	aggs := service.AggregateByDay(factory.ExampleDataset())

	chart := service.BuildChart(aggs)

	assert.Equal(t, []string{"2026-06-01", "2026-06-02"}, chart.Days)
	assert.Equal(t, "x unified", chart.HoverMode)
	require.Len(t, chart.Series, 3)

	requested := chart.Series[0]
	assert.Equal(t, service.SeriesRequestedShifts, requested.ID)
	assert.Equal(t, "line", requested.Type)
	assert.Equal(t, []float64{15, 4}, requested.Values)

	available := chart.Series[1]
	assert.Equal(t, service.SeriesNetAvailable, available.ID)
	assert.Equal(t, "line", available.Type)
	assert.Equal(t, []float64{13, 6}, available.Values)

	gap := chart.Series[2]
	assert.Equal(t, service.SeriesGap, gap.ID)
	assert.Equal(t, "bar", gap.Type)
	assert.Equal(t, []float64{-2, 2}, gap.Values)
	assert.Equal(t, []string{models.ShortfallColor, models.SurplusColor}, gap.Colors)
}

func TestBuildChartZeroGapIsSurplus(t *testing.T) {
	aggs := service.AggregateByDay(factory.ExampleDataset()[1:2])

	chart := service.BuildChart(aggs)

	assert.Equal(t, []string{models.SurplusColor}, chart.Series[2].Colors)
}

func TestBuildChartEmpty(t *testing.T) {
	chart := service.BuildChart(nil)

	assert.Empty(t, chart.Days)
	require.Len(t, chart.Series, 3)
	for _, s := range chart.Series {
		assert.Empty(t, s.Values)
	}
}

func TestBuildTable(t *testing.T) {
	aggs := service.AggregateByDay(factory.ExampleDataset())

	rows := service.BuildTable(aggs)

	assert.Equal(t, []service.TableRow{
		{Day: "2026-06-01", RequestedShifts: 15, NetAvailable: 13, Gap: -2, Status: "shortfall"},
		{Day: "2026-06-02", RequestedShifts: 4, NetAvailable: 6, Gap: 2, Status: "surplus"},
	}, rows)
}
