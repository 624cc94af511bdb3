package repository

import (
	"context"

	"github.com/jhoicas/FeriaStock-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// GetByUsername busca por username exacto (sensible a mayúsculas); nil si no existe.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// Count devuelve el total de usuarios; 0 dispara el flujo de primer arranque.
	Count(ctx context.Context) (int, error)
}
