package dto

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Los KPIs son siempre globales; el filtro por expositor solo acota la tabla.
type DashboardSummaryDTO struct {
	TotalExhibitors   int `json:"total_exhibitors"`    // expositores distintos en el catálogo
	TotalItems        int `json:"total_items"`         // ítems totales del catálogo
	TotalCurrentStock int `json:"total_current_stock"` // suma del stock actual (puede ser negativa)

	// Tabla detallada, ordenada por expositor y tipo de ítem
	Items []StockItemResponse `json:"items"`

	// Filtro aplicado a la tabla; vacío = todos los expositores
	ExhibitorFilter string `json:"exhibitor_filter,omitempty"`
}
