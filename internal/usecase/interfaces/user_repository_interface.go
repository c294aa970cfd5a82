package interfaces

import (
	"context"

	"taller_mecanico/internal/domain/entities"
)

type IUserRepository interface {
	// GetByUsername returns a zero value when the user does not exist.
	GetByUsername(ctx context.Context, username string) (entities.User, error)
	Create(ctx context.Context, u entities.User) (entities.User, error)
}
