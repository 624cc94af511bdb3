package repository

import (
	"context"

	"github.com/jhoicas/FeriaStock-api/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para Movement.
// El libro es append-only: no hay update ni delete.
type MovementRepository interface {
	Create(ctx context.Context, mov *entity.Movement) error
	// List devuelve el libro completo de movimientos (sin paginar).
	List(ctx context.Context) ([]*entity.Movement, error)
	// ListByItem devuelve el historial de un ítem, fecha más reciente primero.
	ListByItem(ctx context.Context, stockItemID string) ([]*entity.Movement, error)
}
