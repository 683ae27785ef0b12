package repository

import (
	"context"

	"github.com/tu-usuario/delivery-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create persiste el usuario; retorna domain.ErrUserAlreadyExists si el
	// username ya está tomado (constraint único del store).
	Create(ctx context.Context, user *entity.User) error
	// GetByUsername busca por username exacto (case-sensitive). (nil, nil) si no existe.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
