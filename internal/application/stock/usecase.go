// Package stock contiene los casos de uso del catálogo de ítems y del
// registro de movimientos.
package stock

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/FeriaStock-api/internal/application/dto"
	"github.com/jhoicas/FeriaStock-api/internal/domain"
	"github.com/jhoicas/FeriaStock-api/internal/domain/entity"
	"github.com/jhoicas/FeriaStock-api/internal/domain/repository"
	domstock "github.com/jhoicas/FeriaStock-api/internal/domain/stock"
)

// ItemUseCase casos de uso del catálogo: alta de ítems y listado con stock actual.
type ItemUseCase struct {
	itemRepo repository.StockItemRepository
	movRepo  repository.MovementRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(itemRepo repository.StockItemRepository, movRepo repository.MovementRepository) *ItemUseCase {
	return &ItemUseCase{itemRepo: itemRepo, movRepo: movRepo}
}

// CreateItem crea un ítem con su stock de apertura. El par
// (exhibitor_name, item_type) es único; un duplicado devuelve
// ErrItemAlreadyExists sin tocar el registro existente.
func (uc *ItemUseCase) CreateItem(ctx context.Context, in dto.CreateStockItemRequest) (*dto.StockItemResponse, error) {
	exhibitor := strings.TrimSpace(in.ExhibitorName)
	itemType := strings.TrimSpace(in.ItemType)
	if exhibitor == "" || itemType == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.OpenStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	item := &entity.StockItem{
		ID:            uuid.New().String(),
		ExhibitorName: exhibitor,
		ItemType:      itemType,
		OpenStock:     in.OpenStock,
		Location:      strings.TrimSpace(in.Location),
		CreatedAt:     time.Now(),
	}
	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	// Ítem recién creado: sin movimientos, delta 0, stock actual = apertura.
	resp := toStockItemResponse(domstock.Snapshot{Item: *item, MovementDelta: 0, CurrentStock: item.OpenStock})
	return &resp, nil
}

// ListWithCurrentStock devuelve la vista completa de stock: catálogo e
// historial se leen enteros y el agregado se recalcula en cada llamada
// (sin caché de saldo acumulado).
func (uc *ItemUseCase) ListWithCurrentStock(ctx context.Context) ([]dto.StockItemResponse, error) {
	items, err := uc.itemRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	movements, err := uc.movRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	view := domstock.ComputeStockView(items, movements)
	out := make([]dto.StockItemResponse, 0, len(view))
	for _, s := range view {
		out = append(out, toStockItemResponse(s))
	}
	return out, nil
}

// Exhibitors devuelve los nombres de expositor distintos, ordenados,
// para el selector de las pantallas de movimientos y del panel.
func (uc *ItemUseCase) Exhibitors(ctx context.Context) ([]string, error) {
	items, err := uc.itemRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(items))
	var names []string
	for _, it := range items {
		if _, ok := seen[it.ExhibitorName]; !ok {
			seen[it.ExhibitorName] = struct{}{}
			names = append(names, it.ExhibitorName)
		}
	}
	sort.Strings(names)
	return names, nil
}

// ItemTypes devuelve los tipos de ítem existentes para un expositor,
// ordenados. Lista vacía si el expositor no tiene ítems.
func (uc *ItemUseCase) ItemTypes(ctx context.Context, exhibitorName string) (*dto.ExhibitorTypesResponse, error) {
	exhibitor := strings.TrimSpace(exhibitorName)
	if exhibitor == "" {
		return nil, domain.ErrInvalidInput
	}
	items, err := uc.itemRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	var types []string
	for _, it := range items {
		if it.ExhibitorName == exhibitor {
			types = append(types, it.ItemType)
		}
	}
	sort.Strings(types)
	return &dto.ExhibitorTypesResponse{ExhibitorName: exhibitor, ItemTypes: types}, nil
}

func toStockItemResponse(s domstock.Snapshot) dto.StockItemResponse {
	return dto.StockItemResponse{
		ID:            s.Item.ID,
		ExhibitorName: s.Item.ExhibitorName,
		ItemType:      s.Item.ItemType,
		OpenStock:     s.Item.OpenStock,
		Location:      s.Item.Location,
		MovementDelta: s.MovementDelta,
		CurrentStock:  s.CurrentStock,
		CreatedAt:     s.Item.CreatedAt,
	}
}
