package testutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactories(t *testing.T) {
	f := NewFactorySet()

	t.Run("record row", func(t *testing.T) {
		r := f.StaffingRecord.Row("2026-06-02", "B", 4, 6, 2)
		assert.Equal(t, Day("2026-06-02"), r.Day)
		assert.Equal(t, "B", r.Depot)
		assert.Equal(t, "2", r.Gap.String())
	})

	t.Run("example dataset is ordered by day and depot", func(t *testing.T) {
		rows := f.StaffingRecord.ExampleDataset()
		assert.Len(t, rows, 3)
		assert.Equal(t, "A", rows[0].Depot)
		assert.Equal(t, "B", rows[1].Depot)
		assert.True(t, rows[2].Day.After(rows[1].Day))
	})

	t.Run("shift row", func(t *testing.T) {
		s := f.StaffingShift.Row("2026-06-01", "A", 10, 9, 1)
		assert.Equal(t, "9", s.Headcount.String())
		assert.Equal(t, "1", s.Absences.String())
	})

	t.Run("day panics on malformed input", func(t *testing.T) {
		assert.Panics(t, func() { Day("01/06/2026") })
	})
}
