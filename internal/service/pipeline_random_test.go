package service_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"staffing-dashboard/internal/database/models"
	"staffing-dashboard/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	randomDepots = []string{"A", "B", "C", "D", "E"}
	randomStart  = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
)

// randomDecimal returns a value with up to two decimals in [-50, 50)
func randomDecimal(rng *rand.Rand) decimal.Decimal {
	return decimal.New(rng.Int64N(10000)-5000, -2)
}

func randomRecords(rng *rand.Rand, n int) []models.StaffingRecord {
	records := make([]models.StaffingRecord, n)
	for i := range records {
		records[i] = models.StaffingRecord{
			Day:             randomStart.AddDate(0, 0, rng.IntN(20)),
			Depot:           randomDepots[rng.IntN(len(randomDepots))],
			RequestedShifts: randomDecimal(rng),
			NetAvailable:    randomDecimal(rng),
			Gap:             randomDecimal(rng),
		}
	}
	return records
}

func randomSelection(rng *rand.Rand) service.DepotSet {
	var picked []string
	for _, d := range append(randomDepots, "Z") {
		if rng.IntN(2) == 0 {
			picked = append(picked, d)
		}
	}
	return service.NewDepotSet(picked...)
}

func randomInterval(rng *rand.Rand) service.DateInterval {
	// Ends may fall outside the data range or be inverted.
	start := randomStart.AddDate(0, 0, rng.IntN(26)-3)
	end := randomStart.AddDate(0, 0, rng.IntN(26)-3)
	return service.NewDateInterval(start, end)
}

func selected(r models.StaffingRecord, depots service.DepotSet, interval service.DateInterval) bool {
	if _, ok := depots[r.Depot]; !ok {
		return false
	}
	return !r.Day.Before(interval.Start) && !r.Day.After(interval.End)
}

func TestPipelineOnGeneratedDatasets(t *testing.T) {
	testCases := []struct {
		name string
		seed uint64
		size int
	}{
		{name: "empty", seed: 1, size: 0},
		{name: "single row", seed: 2, size: 1},
		{name: "small", seed: 3, size: 12},
		{name: "medium", seed: 4, size: 150},
		{name: "large", seed: 5, size: 2000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rng := rand.New(rand.NewPCG(tc.seed, tc.seed*31))
			records := randomRecords(rng, tc.size)

			for round := 0; round < 25; round++ {
				depots := randomSelection(rng)
				interval := randomInterval(rng)

				filtered := service.ApplyFilters(records, depots, interval)

				var expected []models.StaffingRecord
				requested, available, gap := decimal.Zero, decimal.Zero, decimal.Zero
				for _, r := range records {
					if selected(r, depots, interval) {
						expected = append(expected, r)
						requested = requested.Add(r.RequestedShifts)
						available = available.Add(r.NetAvailable)
						gap = gap.Add(r.Gap)
					}
				}
				require.Len(t, filtered, len(expected), "round %d", round)
				for i := range expected {
					assert.Equal(t, expected[i], filtered[i], "round %d row %d", round, i)
				}

				aggs := service.AggregateByDay(filtered)
				for i := 1; i < len(aggs); i++ {
					assert.True(t, aggs[i-1].Day.Before(aggs[i].Day), "round %d: days not strictly ascending", round)
				}

				total := service.SumAggregates(aggs)
				assert.True(t, requested.Equal(total.RequestedShifts), "round %d requested: %s != %s", round, requested, total.RequestedShifts)
				assert.True(t, available.Equal(total.NetAvailable), "round %d available: %s != %s", round, available, total.NetAvailable)
				assert.True(t, gap.Equal(total.Gap), "round %d gap: %s != %s", round, gap, total.Gap)
			}
		})
	}
}
