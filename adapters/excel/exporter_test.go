package excel

import (
	"bytes"
	"context"
	"testing"

	"psychoscore/domain/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportBuildsWorkbook(t *testing.T) {
	exporter := NewProfileExporter()
	results := []scoring.Result{
		&scoring.RFQResult{Promotion: 24, Prevention: 11},
		&scoring.PANASResult{PositiveAffect: 30, NegativeAffect: 15},
	}

	data, err := exporter.Export(context.Background(), "Анна", results)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Профиль")
	assert.Contains(t, sheets, "PANAS")
	assert.Contains(t, sheets, "RFQ")
	assert.NotContains(t, sheets, "HEXACO")

	name, err := f.GetCellValue("Профиль", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Анна", name)

	scale, err := f.GetCellValue("RFQ", "A2")
	require.NoError(t, err)
	assert.Equal(t, "promotion_score", scale)

	score, err := f.GetCellValue("RFQ", "C2")
	require.NoError(t, err)
	assert.Equal(t, "24", score)
}

func TestExportEmptyProfileHasSummaryOnly(t *testing.T) {
	exporter := NewProfileExporter()

	data, err := exporter.Export(context.Background(), "Борис", nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Профиль"}, f.GetSheetList())

	// Every instrument is listed as not completed.
	status, err := f.GetCellValue("Профиль", "B5")
	require.NoError(t, err)
	assert.Equal(t, "нет", status)
}

func TestExportHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exporter := NewProfileExporter()
	_, err := exporter.Export(ctx, "Вера", []scoring.Result{
		&scoring.RFQResult{Promotion: 20, Prevention: 15},
	})
	assert.ErrorIs(t, err, context.Canceled)
}
