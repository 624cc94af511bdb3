package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/FeriaStock-api/internal/application/dto"
	appstock "github.com/jhoicas/FeriaStock-api/internal/application/stock"
	"github.com/jhoicas/FeriaStock-api/internal/domain"
)

// StockItemHandler maneja el catálogo de ítems (protegido).
type StockItemHandler struct {
	uc *appstock.ItemUseCase
}

// NewStockItemHandler construye el handler.
func NewStockItemHandler(uc *appstock.ItemUseCase) *StockItemHandler {
	return &StockItemHandler{uc: uc}
}

// Create godoc
// @Summary      Crear ítem con stock de apertura
// @Tags         stock-items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockItemRequest  true  "exhibitor_name, item_type, open_stock, location"
// @Success      201   {object}  dto.StockItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock-items [post]
func (h *StockItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.CreateItem(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "exhibitor_name e item_type son requeridos y open_stock no puede ser negativo"})
		}
		if errors.Is(err, domain.ErrItemAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ITEM_EXISTS", Message: "ya existe un ítem para ese expositor y tipo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// List godoc
// @Summary      Listar ítems con stock actual calculado
// @Tags         stock-items
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.StockItemResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock-items [get]
func (h *StockItemHandler) List(c *fiber.Ctx) error {
	view, err := h.uc.ListWithCurrentStock(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if view == nil {
		view = []dto.StockItemResponse{}
	}
	return c.JSON(view)
}

// Exhibitors godoc
// @Summary      Listar expositores distintos
// @Tags         stock-items
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   string
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock-items/exhibitors [get]
func (h *StockItemHandler) Exhibitors(c *fiber.Ctx) error {
	names, err := h.uc.Exhibitors(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if names == nil {
		names = []string{}
	}
	return c.JSON(names)
}

// ItemTypes godoc
// @Summary      Tipos de ítem de un expositor
// @Tags         stock-items
// @Security     Bearer
// @Produce      json
// @Param        exhibitor  query  string  true  "Nombre exacto del expositor"
// @Success      200  {object}  dto.ExhibitorTypesResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock-items/types [get]
func (h *StockItemHandler) ItemTypes(c *fiber.Ctx) error {
	out, err := h.uc.ItemTypes(c.Context(), c.Query("exhibitor"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el parámetro exhibitor es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out.ItemTypes == nil {
		out.ItemTypes = []string{}
	}
	return c.JSON(out)
}
