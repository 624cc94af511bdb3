// Package analytics contiene el caso de uso del panel de stock y su
// exportación a planilla.
package analytics

import (
	"context"
	"strings"

	"github.com/jhoicas/FeriaStock-api/internal/application/dto"
	appstock "github.com/jhoicas/FeriaStock-api/internal/application/stock"
)

// StockExporter genera una planilla binaria a partir de la vista de stock.
// Lo implementa el adaptador excelize en infrastructure.
type StockExporter interface {
	Export(items []dto.StockItemResponse) ([]byte, error)
}

// DashboardUseCase construye el resumen del panel: expositores, ítems y
// stock total actual, con filtro opcional por expositor.
//
// Siempre recalcula desde el libro completo; no hay caché del agregado.
type DashboardUseCase struct {
	items    *appstock.ItemUseCase
	exporter StockExporter
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(items *appstock.ItemUseCase, exporter StockExporter) *DashboardUseCase {
	return &DashboardUseCase{items: items, exporter: exporter}
}

// GetSummary devuelve los KPIs y la tabla detallada. Los totales siempre se
// calculan sobre el catálogo completo; exhibitorFilter acota únicamente la
// tabla mostrada, igual que el filtro de la pantalla.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, exhibitorFilter string) (*dto.DashboardSummaryDTO, error) {
	view, err := uc.items.ListWithCurrentStock(ctx)
	if err != nil {
		return nil, err
	}

	exhibitors := make(map[string]struct{}, len(view))
	total := 0
	for _, s := range view {
		exhibitors[s.ExhibitorName] = struct{}{}
		total += s.CurrentStock
	}
	totalItems := len(view)

	filter := strings.TrimSpace(exhibitorFilter)
	if filter != "" {
		filtered := view[:0]
		for _, s := range view {
			if s.ExhibitorName == filter {
				filtered = append(filtered, s)
			}
		}
		view = filtered
	}

	if view == nil {
		view = []dto.StockItemResponse{}
	}
	return &dto.DashboardSummaryDTO{
		TotalExhibitors:   len(exhibitors),
		TotalItems:        totalItems,
		TotalCurrentStock: total,
		Items:             view,
		ExhibitorFilter:   filter,
	}, nil
}

// ExportXLSX genera la planilla con la vista completa de stock.
func (uc *DashboardUseCase) ExportXLSX(ctx context.Context) ([]byte, error) {
	view, err := uc.items.ListWithCurrentStock(ctx)
	if err != nil {
		return nil, err
	}
	return uc.exporter.Export(view)
}
