package excel_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/FeriaStock-api/internal/application/dto"
	"github.com/jhoicas/FeriaStock-api/internal/infrastructure/excel"
)

func TestExport_GeneraPlanillaLegible(t *testing.T) {
	exporter := excel.NewStockExporter()

	data, err := exporter.Export([]dto.StockItemResponse{
		{ExhibitorName: "Acme", ItemType: "Book", OpenStock: 10, MovementDelta: 2, CurrentStock: 12, Location: "Pasillo 3"},
		{ExhibitorName: "Beta", ItemType: "Stationery", OpenStock: 0, MovementDelta: -5, CurrentStock: -5},
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	got, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Expositor", got)

	got, err = f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Acme", got)

	got, err = f.GetCellValue(sheet, "E2")
	require.NoError(t, err)
	assert.Equal(t, "12", got)

	// El stock negativo se exporta tal cual, sin recortar
	got, err = f.GetCellValue(sheet, "E3")
	require.NoError(t, err)
	assert.Equal(t, "-5", got)
}

func TestExport_SinItems_SoloEncabezado(t *testing.T) {
	exporter := excel.NewStockExporter()

	data, err := exporter.Export(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1, "solo la fila de encabezado")
}
