package models

import "github.com/shopspring/decimal"

// GapStatus classifies a gap value by its sign
type GapStatus string

const (
	GapStatusShortfall GapStatus = "shortfall"
	GapStatusSurplus   GapStatus = "surplus"
)

// Bar colors used by the gap series
const (
	ShortfallColor = "#d62728"
	SurplusColor   = "#2ca02c"
)

// GapStatusFor returns shortfall for negative gaps and surplus otherwise (zero included)
func GapStatusFor(gap decimal.Decimal) GapStatus {
	if gap.IsNegative() {
		return GapStatusShortfall
	}
	return GapStatusSurplus
}

// IsValid checks if the GapStatus is valid
func (s GapStatus) IsValid() bool {
	switch s {
	case GapStatusShortfall, GapStatusSurplus:
		return true
	}
	return false
}

// Color returns the bar color for the status
func (s GapStatus) Color() string {
	if s == GapStatusShortfall {
		return ShortfallColor
	}
	return SurplusColor
}
