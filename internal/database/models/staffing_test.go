package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGapStatusFor(t *testing.T) {
	assert.Equal(t, GapStatusShortfall, GapStatusFor(decimal.NewFromInt(-2)))
	assert.Equal(t, GapStatusSurplus, GapStatusFor(decimal.Zero))
	assert.Equal(t, GapStatusSurplus, GapStatusFor(decimal.RequireFromString("0.5")))
}

func TestGapStatus(t *testing.T) {
	assert.True(t, GapStatusShortfall.IsValid())
	assert.True(t, GapStatusSurplus.IsValid())
	assert.False(t, GapStatus("balanced").IsValid())

	assert.Equal(t, ShortfallColor, GapStatusShortfall.Color())
	assert.Equal(t, SurplusColor, GapStatusSurplus.Color())
}

func TestDateOnly(t *testing.T) {
	rome := time.FixedZone("CEST", 2*60*60)
	in := time.Date(2026, 6, 1, 23, 30, 0, 0, rome)

	assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), DateOnly(in))
}

func TestStaffingShiftTableName(t *testing.T) {
	assert.Equal(t, "turni_deposito", StaffingShift{}.TableName())
}
