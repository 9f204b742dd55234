package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Columns of the staffing view, in select order
var StaffingColumns = []string{"giorno", "deposito", "turni_richiesti", "disponibili_netti", "gap"}

// StaffingRecord is one row of the staffing view. The table name is configured
// at runtime, so queries select it with db.Table.
type StaffingRecord struct {
	Day             time.Time       `json:"giorno" gorm:"column:giorno;type:date"`
	Depot           string          `json:"deposito" gorm:"column:deposito"`
	RequestedShifts decimal.Decimal `json:"turni_richiesti" gorm:"column:turni_richiesti;type:numeric"`
	NetAvailable    decimal.Decimal `json:"disponibili_netti" gorm:"column:disponibili_netti;type:numeric"`
	Gap             decimal.Decimal `json:"gap" gorm:"column:gap;type:numeric"`
}

// StaffingShift is the base table behind the default view: per depot and day,
// the requested shifts plus headcount and absences.
type StaffingShift struct {
	BaseModel
	Day             time.Time       `json:"giorno" gorm:"column:giorno;type:date;not null;index:idx_turni_giorno_deposito,priority:1"`
	Depot           string          `json:"deposito" gorm:"column:deposito;size:64;not null;index:idx_turni_giorno_deposito,priority:2"`
	RequestedShifts decimal.Decimal `json:"turni_richiesti" gorm:"column:turni_richiesti;type:numeric(10,2);not null;default:0"`
	Headcount       decimal.Decimal `json:"organico" gorm:"column:organico;type:numeric(10,2);not null;default:0"`
	Absences        decimal.Decimal `json:"assenze" gorm:"column:assenze;type:numeric(10,2);not null;default:0"`
}

// TableName returns the table name for StaffingShift
func (StaffingShift) TableName() string {
	return "turni_deposito"
}

// DateOnly truncates t to midnight UTC of its calendar date
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
