// Package excel genera la exportación XLSX de la vista de stock.
package excel

import (
	"fmt"

	"github.com/jhoicas/FeriaStock-api/internal/application/dto"
	"github.com/xuri/excelize/v2"
)

// StockExporter adaptador excelize para exportar la vista de stock a planilla.
type StockExporter struct{}

// NewStockExporter construye el exportador.
func NewStockExporter() *StockExporter {
	return &StockExporter{}
}

// Export escribe la vista de stock (una fila por ítem, en el orden recibido)
// y devuelve el archivo XLSX en memoria.
func (e *StockExporter) Export(items []dto.StockItemResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"Expositor",
		"Tipo de ítem",
		"Stock apertura",
		"Movimientos netos",
		"Stock actual",
		"Ubicación",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("escribir encabezado: %w", err)
	}

	row := 2
	for _, it := range items {
		values := []interface{}{
			it.ExhibitorName,
			it.ItemType,
			it.OpenStock,
			it.MovementDelta,
			it.CurrentStock,
			it.Location,
		}
		cell := fmt.Sprintf("A%d", row)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("escribir fila %d: %w", row, err)
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar planilla: %w", err)
	}
	return buf.Bytes(), nil
}
