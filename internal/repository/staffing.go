package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"staffing-dashboard/internal/database/models"
	apperrors "staffing-dashboard/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// DBProvider hands out the shared database handle; database.Connector implements it.
type DBProvider interface {
	DB() (*gorm.DB, error)
	Source() string
}

// StaffingRepository reads the staffing view
type StaffingRepository struct {
	provider DBProvider
	view     string
}

// NewStaffingRepository creates a new staffing repository over view
func NewStaffingRepository(provider DBProvider, view string) *StaffingRepository {
	return &StaffingRepository{provider: provider, view: view}
}

// View returns the name of the queried view
func (r *StaffingRepository) View() string {
	return r.view
}

// Source returns the identity of the underlying data source
func (r *StaffingRepository) Source() string {
	return r.provider.Source()
}

// LoadAll retrieves every row of the view ordered by day and depot.
// Columns are listed explicitly so a schema mismatch fails the query instead
// of leaving zero values behind.
func (r *StaffingRepository) LoadAll(ctx context.Context) ([]models.StaffingRecord, error) {
	db, err := r.provider.DB()
	if err != nil {
		return nil, classifyError(r.provider.Source(), r.view, err)
	}

	var records []models.StaffingRecord
	err = db.WithContext(ctx).
		Table(r.view).
		Select(models.StaffingColumns).
		Order("giorno ASC, deposito ASC").
		Find(&records).Error
	if err != nil {
		return nil, classifyError(r.provider.Source(), r.view, err)
	}

	for i := range records {
		records[i].Day = models.DateOnly(records[i].Day)
	}
	return records, nil
}

// classifyError maps driver errors onto ConnectionError and QueryError
func classifyError(source, view string, err error) error {
	if err == nil {
		return nil
	}
	if apperrors.IsConnection(err) || apperrors.IsQuery(err) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return apperrors.NewConnectionError(source, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 08: connection exception
		if strings.HasPrefix(pgErr.Code, "08") {
			return apperrors.NewConnectionError(source, err)
		}
		return apperrors.NewQueryError(view, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, driver.ErrBadConn) {
		return apperrors.NewConnectionError(source, err)
	}

	// Anything else failed while running the query or scanning rows
	return apperrors.NewQueryError(view, err)
}
