package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/FeriaStock-api/internal/application/analytics"
	"github.com/jhoicas/FeriaStock-api/internal/application/dto"
)

// DashboardHandler maneja los endpoints del panel de stock.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen del panel de stock
// @Description  KPIs globales (expositores, ítems, stock actual total) más la tabla detallada; el filtro por expositor solo acota la tabla
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        exhibitor  query     string  false  "Nombre exacto del expositor"
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context(), c.Query("exhibitor"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(summary)
}

// Export godoc
// @Summary      Exportar la vista de stock a XLSX
// @Tags         dashboard
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/export [get]
func (h *DashboardHandler) Export(c *fiber.Ctx) error {
	data, err := h.uc.ExportXLSX(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock_feria.xlsx"`)
	return c.Send(data)
}
