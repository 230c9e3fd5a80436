package repository

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para operadores (schema público).
// Todas las operaciones de listado y borrado se acotan al tenant recibido.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	ListByTenant(ctx context.Context, tenantID int64) ([]*entity.User, error)
	DeleteInTenant(ctx context.Context, tenantID, id int64) error
}
