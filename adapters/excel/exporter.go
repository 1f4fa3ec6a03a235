// Package excel renders a user's scored profile as an xlsx workbook, one
// sheet per instrument plus a summary sheet.
package excel

import (
	"context"
	"strings"

	"psychoscore/domain/report"
	"psychoscore/domain/scoring"
	"psychoscore/domain/survey"
	"psychoscore/internal/errors"
	"psychoscore/ports"

	"github.com/xuri/excelize/v2"
)

// ProfileExporterImpl implements ProfileExporter via excelize
type ProfileExporterImpl struct{}

// NewProfileExporter creates a workbook profile exporter
func NewProfileExporter() ports.ProfileExporter {
	return &ProfileExporterImpl{}
}

var profileHeaders = []string{"Шкала", "Название", "Балл", "Категория", "Интерпретация"}

// Export builds the workbook in memory and returns its bytes.
func (e *ProfileExporterImpl) Export(ctx context.Context, userName string, results []scoring.Result) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSummarySheet(f, userName, results); err != nil {
		return nil, errors.ExportError("xlsx", err)
	}

	byInstrument := make(map[survey.Instrument]scoring.Result, len(results))
	for _, r := range results {
		byInstrument[r.Instrument()] = r
	}

	for _, inst := range survey.All() {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		result, ok := byInstrument[inst]
		if !ok {
			continue
		}
		if err := writeInstrumentSheet(f, inst, result); err != nil {
			return nil, errors.ExportError("xlsx", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.ExportError("xlsx", err)
	}
	return buf.Bytes(), nil
}

// writeSummarySheet repurposes the default Sheet1 as the overview.
func writeSummarySheet(f *excelize.File, userName string, results []scoring.Result) error {
	sheet := "Профиль"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	if err := f.SetCellValue(sheet, "A1", "Психологический профиль"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "A2", userName); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "A4", "Методика"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "B4", "Пройдена"); err != nil {
		return err
	}

	completed := make(map[survey.Instrument]bool, len(results))
	for _, r := range results {
		completed[r.Instrument()] = true
	}

	row := 5
	for _, inst := range survey.All() {
		status := "нет"
		if completed[inst] {
			status = "да"
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetCellValue(sheet, cell, strings.ToUpper(inst.String())); err != nil {
			return err
		}
		cell, _ = excelize.CoordinatesToCellName(2, row)
		if err := f.SetCellValue(sheet, cell, status); err != nil {
			return err
		}
		row++
	}
	return nil
}

func writeInstrumentSheet(f *excelize.File, inst survey.Instrument, result scoring.Result) error {
	sheet := sheetName(inst)
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	for i, h := range profileHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for i, si := range report.Interpret(result) {
		rowIdx := i + 2
		values := []interface{}{si.Scale, si.Label, si.Score, si.Band, si.Text}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, rowIdx)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// sheetName keeps sheet titles inside the 31-character xlsx limit.
func sheetName(inst survey.Instrument) string {
	name := strings.ToUpper(inst.String())
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}
