package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportSheet is the worksheet holding the exported table
const ExportSheet = "Report"

var exportHeader = []interface{}{"giorno", "turni_richiesti", "disponibili_netti", "gap"}

// ExportXLSX renders the filtered daily table as an xlsx workbook. Negative
// gap cells use the shortfall color.
func (s *StaffingService) ExportXLSX(ctx context.Context, req *FilterRequest) ([]byte, error) {
	report, err := s.Compute(ctx, req)
	if err != nil {
		return nil, err
	}
	return WriteWorkbook(BuildTable(report.Aggregates))
}

// WriteWorkbook writes rows into a single-sheet workbook
func WriteWorkbook(rows []TableRow) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", ExportSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	shortfallStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Color: "D62728"}})
	if err != nil {
		return nil, fmt.Errorf("failed to create shortfall style: %w", err)
	}

	if err := f.SetSheetRow(ExportSheet, "A1", &exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	if err := f.SetCellStyle(ExportSheet, "A1", "D1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	for i, row := range rows {
		line := i + 2
		cell, err := excelize.CoordinatesToCellName(1, line)
		if err != nil {
			return nil, err
		}
		values := []interface{}{row.Day, row.RequestedShifts, row.NetAvailable, row.Gap}
		if err := f.SetSheetRow(ExportSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", line, err)
		}
		if row.Gap < 0 {
			gapCell := fmt.Sprintf("D%d", line)
			if err := f.SetCellStyle(ExportSheet, gapCell, gapCell, shortfallStyle); err != nil {
				return nil, fmt.Errorf("failed to style row %d: %w", line, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return bytes.Clone(buf.Bytes()), nil
}
