package usecase

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

// counterparty son los datos comunes a proveedores y clientes ya validados.
type counterparty struct {
	name, taxID, address, phone, email, note string
}

func validateCounterparty(in dto.CounterpartyRequest) (counterparty, error) {
	var c counterparty
	var err error
	if c.name, err = requireText("name", in.Name); err != nil {
		return c, err
	}
	if c.taxID, err = normalizeTaxID("tax_id", in.TaxID); err != nil {
		return c, err
	}
	if c.email, err = normalizeEmail("email", in.Email); err != nil {
		return c, err
	}
	c.address, c.phone, c.note = in.Address, in.Phone, in.Note
	return c, nil
}

// ProviderUseCase CRUD de proveedores.
type ProviderUseCase struct {
	repo repository.ProviderRepository
}

// NewProviderUseCase construye el caso de uso.
func NewProviderUseCase(repo repository.ProviderRepository) *ProviderUseCase {
	return &ProviderUseCase{repo: repo}
}

// Create crea un proveedor.
func (uc *ProviderUseCase) Create(ctx context.Context, rc tenant.RequestContext, in dto.CounterpartyRequest) (*dto.CounterpartyResponse, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	c, err := validateCounterparty(in)
	if err != nil {
		return nil, err
	}
	p := &entity.Provider{Name: c.name, TaxID: c.taxID, Address: c.address, Phone: c.phone, Email: c.email, Note: c.note}
	if err := uc.repo.Create(ctx, rc.Namespace, p); err != nil {
		return nil, err
	}
	return providerResponse(p), nil
}

// Get obtiene un proveedor por ID.
func (uc *ProviderUseCase) Get(ctx context.Context, rc tenant.RequestContext, id int64) (*dto.CounterpartyResponse, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	p, err := uc.repo.GetByID(ctx, rc.Namespace, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return providerResponse(p), nil
}

// List lista proveedores con paginación.
func (uc *ProviderUseCase) List(ctx context.Context, rc tenant.RequestContext, page dto.PageRequest) (*dto.CounterpartyListResponse, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	page.DefaultPage()
	list, total, err := uc.repo.List(ctx, rc.Namespace, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CounterpartyResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *providerResponse(p))
	}
	return &dto.CounterpartyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Update reemplaza los datos de un proveedor.
func (uc *ProviderUseCase) Update(ctx context.Context, rc tenant.RequestContext, id int64, in dto.CounterpartyRequest) (*dto.CounterpartyResponse, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	c, err := validateCounterparty(in)
	if err != nil {
		return nil, err
	}
	p := &entity.Provider{ID: id, Name: c.name, TaxID: c.taxID, Address: c.address, Phone: c.phone, Email: c.email, Note: c.note}
	if err := uc.repo.Update(ctx, rc.Namespace, p); err != nil {
		return nil, err
	}
	return providerResponse(p), nil
}

// Delete elimina un proveedor. Con compras o facturas asociadas devuelve domain.ErrConflict.
func (uc *ProviderUseCase) Delete(ctx context.Context, rc tenant.RequestContext, id int64) error {
	if err := rc.Check(); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, rc.Namespace, id)
}

func providerResponse(p *entity.Provider) *dto.CounterpartyResponse {
	return &dto.CounterpartyResponse{ID: p.ID, Name: p.Name, TaxID: p.TaxID, Address: p.Address, Phone: p.Phone, Email: p.Email, Note: p.Note}
}

// ClientUseCase CRUD de clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crea un cliente.
func (uc *ClientUseCase) Create(ctx context.Context, rc tenant.RequestContext, in dto.CounterpartyRequest) (*dto.CounterpartyResponse, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	c, err := validateCounterparty(in)
	if err != nil {
		return nil, err
	}
	cl := &entity.Client{Name: c.name, TaxID: c.taxID, Address: c.address, Phone: c.phone, Email: c.email, Note: c.note}
	if err := uc.repo.Create(ctx, rc.Namespace, cl); err != nil {
		return nil, err
	}
	return clientResponse(cl), nil
}

// Get obtiene un cliente por ID.
func (uc *ClientUseCase) Get(ctx context.Context, rc tenant.RequestContext, id int64) (*dto.CounterpartyResponse, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	cl, err := uc.repo.GetByID(ctx, rc.Namespace, id)
	if err != nil {
		return nil, err
	}
	if cl == nil {
		return nil, domain.ErrNotFound
	}
	return clientResponse(cl), nil
}

// List lista clientes con paginación.
func (uc *ClientUseCase) List(ctx context.Context, rc tenant.RequestContext, page dto.PageRequest) (*dto.CounterpartyListResponse, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	page.DefaultPage()
	list, total, err := uc.repo.List(ctx, rc.Namespace, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CounterpartyResponse, 0, len(list))
	for _, cl := range list {
		items = append(items, *clientResponse(cl))
	}
	return &dto.CounterpartyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Update reemplaza los datos de un cliente.
func (uc *ClientUseCase) Update(ctx context.Context, rc tenant.RequestContext, id int64, in dto.CounterpartyRequest) (*dto.CounterpartyResponse, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	c, err := validateCounterparty(in)
	if err != nil {
		return nil, err
	}
	cl := &entity.Client{ID: id, Name: c.name, TaxID: c.taxID, Address: c.address, Phone: c.phone, Email: c.email, Note: c.note}
	if err := uc.repo.Update(ctx, rc.Namespace, cl); err != nil {
		return nil, err
	}
	return clientResponse(cl), nil
}

// Delete elimina un cliente. Con ventas asociadas devuelve domain.ErrConflict.
func (uc *ClientUseCase) Delete(ctx context.Context, rc tenant.RequestContext, id int64) error {
	if err := rc.Check(); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, rc.Namespace, id)
}

func clientResponse(c *entity.Client) *dto.CounterpartyResponse {
	return &dto.CounterpartyResponse{ID: c.ID, Name: c.Name, TaxID: c.TaxID, Address: c.Address, Phone: c.Phone, Email: c.Email, Note: c.Note}
}
