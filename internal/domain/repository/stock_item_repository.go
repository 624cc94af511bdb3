package repository

import (
	"context"

	"github.com/jhoicas/FeriaStock-api/internal/domain/entity"
)

// StockItemRepository define el puerto de persistencia para StockItem (DIP).
type StockItemRepository interface {
	Create(ctx context.Context, item *entity.StockItem) error
	GetByID(ctx context.Context, id string) (*entity.StockItem, error)
	// GetByExhibitorAndType resuelve el ítem por la clave lógica
	// (exhibitor_name, item_type); nil si no existe.
	GetByExhibitorAndType(ctx context.Context, exhibitorName, itemType string) (*entity.StockItem, error)
	// List devuelve el catálogo completo (sin paginar; escala de una feria).
	List(ctx context.Context) ([]*entity.StockItem, error)
	// UpdateLocation sobrescribe la ubicación del ítem (único campo mutable).
	UpdateLocation(ctx context.Context, id, location string) error
}
