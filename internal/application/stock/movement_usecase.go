package stock

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/FeriaStock-api/internal/application/dto"
	"github.com/jhoicas/FeriaStock-api/internal/domain"
	"github.com/jhoicas/FeriaStock-api/internal/domain/entity"
	"github.com/jhoicas/FeriaStock-api/internal/domain/repository"
	domstock "github.com/jhoicas/FeriaStock-api/internal/domain/stock"
)

// RegisterMovementUseCase registra movimientos IN/OUT contra el libro
// append-only y consulta el historial por ítem.
//
// El insert del movimiento y la actualización de ubicación del ítem son
// escrituras independientes de una fila, sin transacción: el agregado es una
// suma conmutativa y dos sesiones concurrentes pueden intercalar sus
// escrituras en cualquier orden sin conflicto.
type RegisterMovementUseCase struct {
	itemRepo repository.StockItemRepository
	movRepo  repository.MovementRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(itemRepo repository.StockItemRepository, movRepo repository.MovementRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{itemRepo: itemRepo, movRepo: movRepo}
}

// Register valida y persiste un movimiento. El ítem se resuelve por
// (exhibitor_name, item_type); si no existe devuelve ErrNotFound y no se
// escribe nada. Si la petición trae ubicación, se sobrescribe la del ítem.
// Devuelve el movimiento creado y el stock actual resultante.
func (uc *RegisterMovementUseCase) Register(ctx context.Context, in dto.RegisterMovementRequest) (*dto.RegisterMovementResponse, error) {
	movType := strings.ToUpper(strings.TrimSpace(in.Type))
	if movType != entity.MovementTypeIN && movType != entity.MovementTypeOUT {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	movDate := strings.TrimSpace(in.Date)
	if _, err := time.Parse("2006-01-02", movDate); err != nil {
		return nil, domain.ErrInvalidInput
	}

	item, err := uc.itemRepo.GetByExhibitorAndType(ctx, strings.TrimSpace(in.ExhibitorName), strings.TrimSpace(in.ItemType))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	mov := &entity.Movement{
		ID:          uuid.New().String(),
		StockItemID: item.ID,
		Date:        movDate,
		Type:        movType,
		Quantity:    in.Quantity,
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   time.Now(),
	}
	if err := uc.movRepo.Create(ctx, mov); err != nil {
		return nil, err
	}

	if loc := strings.TrimSpace(in.Location); loc != "" {
		if err := uc.itemRepo.UpdateLocation(ctx, item.ID, loc); err != nil {
			return nil, err
		}
		item.Location = loc
	}

	current, err := uc.currentStock(ctx, item)
	if err != nil {
		return nil, err
	}
	return &dto.RegisterMovementResponse{
		Movement:     toMovementResponse(mov),
		CurrentStock: current,
	}, nil
}

// History devuelve el ítem con su stock actual y su historial de
// movimientos, fecha más reciente primero.
func (uc *RegisterMovementUseCase) History(ctx context.Context, stockItemID string) (*dto.MovementHistoryResponse, error) {
	item, err := uc.itemRepo.GetByID(ctx, stockItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	movements, err := uc.movRepo.ListByItem(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	view := domstock.ComputeStockView([]*entity.StockItem{item}, movements)
	out := &dto.MovementHistoryResponse{
		Item:      toStockItemResponse(view[0]),
		Movements: make([]dto.MovementResponse, 0, len(movements)),
	}
	for _, m := range movements {
		out.Movements = append(out.Movements, toMovementResponse(m))
	}
	return out, nil
}

func (uc *RegisterMovementUseCase) currentStock(ctx context.Context, item *entity.StockItem) (int, error) {
	movements, err := uc.movRepo.ListByItem(ctx, item.ID)
	if err != nil {
		return 0, err
	}
	view := domstock.ComputeStockView([]*entity.StockItem{item}, movements)
	return view[0].CurrentStock, nil
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:          m.ID,
		StockItemID: m.StockItemID,
		Date:        m.Date,
		Type:        m.Type,
		Quantity:    m.Quantity,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
	}
}
