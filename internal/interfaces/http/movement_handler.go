package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/FeriaStock-api/internal/application/dto"
	appstock "github.com/jhoicas/FeriaStock-api/internal/application/stock"
	"github.com/jhoicas/FeriaStock-api/internal/domain"
)

// MovementHandler maneja el registro de movimientos y el historial (protegido).
type MovementHandler struct {
	uc *appstock.RegisterMovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *appstock.RegisterMovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar movimiento IN/OUT de un ítem
// @Description  Resuelve el ítem por expositor + tipo, agrega el movimiento al
//               libro y, si viene ubicación, la sobrescribe en el ítem.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "exhibitor_name, item_type, movement_type, quantity, movement_date, location, notes"
// @Success      201   {object}  dto.RegisterMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "movement_type debe ser IN u OUT, quantity positiva y movement_date con formato YYYY-MM-DD"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code:    "ITEM_NOT_FOUND",
				Message: "no existe stock para el expositor '" + in.ExhibitorName + "' con tipo '" + in.ItemType + "'; créelo primero en la gestión de ítems",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History godoc
// @Summary      Historial de movimientos de un ítem (más reciente primero)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.MovementHistoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-items/{id}/movements [get]
func (h *MovementHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ITEM_NOT_FOUND", Message: "ítem no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
