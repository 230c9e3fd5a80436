package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

const minPasswordLength = 8

// OperatorUseCase administra los operadores (usuarios) de un tenant.
type OperatorUseCase struct {
	repo repository.UserRepository
}

// NewOperatorUseCase construye el caso de uso con el puerto de persistencia.
func NewOperatorUseCase(repo repository.UserRepository) *OperatorUseCase {
	return &OperatorUseCase{repo: repo}
}

// List devuelve los operadores del tenant de la petición.
func (uc *OperatorUseCase) List(ctx context.Context, rc tenant.RequestContext) ([]dto.UserResponse, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByTenant(ctx, rc.TenantID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return items, nil
}

// Create da de alta un operador en el tenant del admin. Devuelve domain.ErrEmailAlreadyExists si el email existe.
func (uc *OperatorUseCase) Create(ctx context.Context, rc tenant.RequestContext, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := rc.Require(tenant.RoleAdmin); err != nil {
		return nil, err
	}
	email, err := normalizeEmail("email", in.Email)
	if err != nil {
		return nil, err
	}
	if email == "" {
		return nil, domain.Invalid("email", "obligatorio")
	}
	name, err := requireText("name", in.Name)
	if err != nil {
		return nil, err
	}
	if len(in.Password) < minPasswordLength {
		return nil, domain.Invalid("password", "mínimo 8 caracteres")
	}
	role := in.Role
	if role == "" {
		role = tenant.RoleOperator
	}
	if !tenant.ValidRole(role) {
		return nil, domain.Invalid("role", "debe ser admin u operator")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		TenantID:     rc.TenantID,
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete elimina un operador del propio tenant. Un admin no puede eliminarse a sí mismo.
func (uc *OperatorUseCase) Delete(ctx context.Context, rc tenant.RequestContext, id int64) error {
	if err := rc.Require(tenant.RoleAdmin); err != nil {
		return err
	}
	if id == rc.UserID {
		return domain.ErrForbidden
	}
	return uc.repo.DeleteInTenant(ctx, rc.TenantID, id)
}
