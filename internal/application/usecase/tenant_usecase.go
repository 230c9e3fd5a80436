package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

// TenantUseCase perfil de la empresa (tenant) del operador autenticado.
type TenantUseCase struct {
	repo repository.TenantRepository
}

// NewTenantUseCase construye el caso de uso con el puerto del registro de tenants.
func NewTenantUseCase(repo repository.TenantRepository) *TenantUseCase {
	return &TenantUseCase{repo: repo}
}

// Get devuelve el perfil del tenant de la petición.
func (uc *TenantUseCase) Get(ctx context.Context, rc tenant.RequestContext) (*dto.TenantResponse, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	t, err := uc.load(ctx, rc.TenantID)
	if err != nil {
		return nil, err
	}
	return toTenantResponse(t), nil
}

// Update modifica los datos de contacto. Solo admin. El schema no se toca.
func (uc *TenantUseCase) Update(ctx context.Context, rc tenant.RequestContext, in dto.UpdateTenantRequest) (*dto.TenantResponse, error) {
	if err := rc.Require(tenant.RoleAdmin); err != nil {
		return nil, err
	}
	t, err := uc.load(ctx, rc.TenantID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if t.Name, err = requireText("name", *in.Name); err != nil {
			return nil, err
		}
	}
	if in.LegalName != nil {
		if t.LegalName, err = requireText("legal_name", *in.LegalName); err != nil {
			return nil, err
		}
	}
	if in.TaxID != nil {
		if t.TaxID, err = normalizeTaxID("tax_id", *in.TaxID); err != nil {
			return nil, err
		}
	}
	if in.Email != nil {
		if t.Email, err = normalizeEmail("email", *in.Email); err != nil {
			return nil, err
		}
	}
	if in.Address != nil {
		t.Address = *in.Address
	}
	if in.Phone != nil {
		t.Phone = *in.Phone
	}
	t.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return toTenantResponse(t), nil
}

func (uc *TenantUseCase) load(ctx context.Context, id int64) (*entity.Tenant, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

func toTenantResponse(t *entity.Tenant) *dto.TenantResponse {
	return &dto.TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		LegalName: t.LegalName,
		TaxID:     t.TaxID,
		Address:   t.Address,
		Phone:     t.Phone,
		Email:     t.Email,
		UpdatedAt: t.UpdatedAt,
	}
}
