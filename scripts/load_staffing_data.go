package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"staffing-dashboard/internal/config"
	"staffing-dashboard/internal/database"
	"staffing-dashboard/internal/database/models"
	"staffing-dashboard/internal/repository"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ShiftData matches one row of turni_deposito
type ShiftData struct {
	Day             string  `yaml:"giorno"`
	Depot           string  `yaml:"deposito"`
	RequestedShifts float64 `yaml:"turni_richiesti"`
	Headcount       float64 `yaml:"organico"`
	Absences        float64 `yaml:"assenze"`
}

// ShiftsFile is the layout of a seed file
type ShiftsFile struct {
	Shifts []ShiftData `yaml:"turni"`
}

func main() {
	log.Println("Loading staffing data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.EnsureStaffingSchema(db, cfg.StaffingView); err != nil {
		log.Fatalf("Failed to prepare schema: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	loaded, err := loadShifts(context.Background(), repository.NewStaffingShiftRepository(db), dataDir)
	if err != nil {
		log.Fatalf("Failed to load staffing data: %v", err)
	}

	log.Printf("Loaded %d shifts into %s (view %s)", loaded, models.StaffingShift{}.TableName(), cfg.StaffingView)
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadShifts replaces, per depot, the stored days covered by the seed files
func loadShifts(ctx context.Context, repo repository.StaffingShiftRepositoryInterface, dataDir string) (int, error) {
	rows, err := readShiftFiles(dataDir)
	if err != nil {
		return 0, err
	}

	shifts := make([]models.StaffingShift, 0, len(rows))
	for i, row := range rows {
		shift, err := row.toModel()
		if err != nil {
			return 0, fmt.Errorf("row %d: %w", i+1, err)
		}
		shifts = append(shifts, shift)
	}

	removed, err := repo.ReplaceShifts(ctx, shifts)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		log.Printf("Replaced %d existing shifts", removed)
	}
	return len(shifts), nil
}

func (d ShiftData) toModel() (models.StaffingShift, error) {
	day, err := time.Parse("2006-01-02", d.Day)
	if err != nil {
		return models.StaffingShift{}, fmt.Errorf("invalid giorno %q: %w", d.Day, err)
	}
	if strings.TrimSpace(d.Depot) == "" {
		return models.StaffingShift{}, fmt.Errorf("missing deposito on %s", d.Day)
	}
	return models.StaffingShift{
		Day:             day,
		Depot:           d.Depot,
		RequestedShifts: decimal.NewFromFloat(d.RequestedShifts),
		Headcount:       decimal.NewFromFloat(d.Headcount),
		Absences:        decimal.NewFromFloat(d.Absences),
	}, nil
}

func readShiftFiles(dataDir string) ([]ShiftData, error) {
	var all []ShiftData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && (strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			var file ShiftsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			all = append(all, file.Shifts...)
		}
		return nil
	})

	return all, err
}
