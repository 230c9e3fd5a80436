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

// ProductUseCase casos de uso CRUD para productos. Stock se maneja vía compras y ventas.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categories repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories}
}

// Create crea un nuevo producto. El stock actual arranca igual al stock inicial.
func (uc *ProductUseCase) Create(ctx context.Context, rc tenant.RequestContext, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	name, err := requireText("name", in.Name)
	if err != nil {
		return nil, err
	}
	if in.InitialStock < 0 {
		return nil, domain.Invalid("initial_stock", "no puede ser negativo")
	}
	if in.UnitPrice.IsNegative() {
		return nil, domain.Invalid("unit_price", "no puede ser negativo")
	}
	currency, ok := entity.NormalizeCurrency(in.Currency)
	if !ok {
		return nil, domain.Invalid("currency", "código ISO 4217 de 3 letras")
	}
	if err := checkCategory(ctx, uc.categories, rc.Namespace, in.CategoryID); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		Name:         name,
		CategoryID:   in.CategoryID,
		Currency:     currency,
		UnitPrice:    in.UnitPrice,
		InitialStock: in.InitialStock,
		Stock:        in.InitialStock,
		Active:       true,
		Note:         in.Note,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, rc.Namespace, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Get obtiene un producto por ID.
func (uc *ProductUseCase) Get(ctx context.Context, rc tenant.RequestContext, id int64) (*dto.ProductResponse, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	product, err := uc.load(ctx, rc.Namespace, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. No permite modificar stock (se maneja vía movimientos).
// category_id = 0 quita la categoría.
func (uc *ProductUseCase) Update(ctx context.Context, rc tenant.RequestContext, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	product, err := uc.load(ctx, rc.Namespace, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if product.Name, err = requireText("name", *in.Name); err != nil {
			return nil, err
		}
	}
	if in.CategoryID != nil {
		if *in.CategoryID == 0 {
			product.CategoryID = nil
		} else {
			if err := checkCategory(ctx, uc.categories, rc.Namespace, in.CategoryID); err != nil {
				return nil, err
			}
			product.CategoryID = in.CategoryID
		}
	}
	if in.Currency != nil {
		currency, ok := entity.NormalizeCurrency(*in.Currency)
		if !ok {
			return nil, domain.Invalid("currency", "código ISO 4217 de 3 letras")
		}
		product.Currency = currency
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, domain.Invalid("unit_price", "no puede ser negativo")
		}
		product.UnitPrice = *in.UnitPrice
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	if in.Note != nil {
		product.Note = *in.Note
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, rc.Namespace, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación. onlyActive oculta los dados de baja.
func (uc *ProductUseCase) List(ctx context.Context, rc tenant.RequestContext, onlyActive bool, page dto.PageRequest) (*dto.ProductListResponse, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	page.DefaultPage()
	list, total, err := uc.repo.List(ctx, rc.Namespace, onlyActive, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Delete elimina un producto. Con compras o ventas registradas devuelve domain.ErrConflict.
func (uc *ProductUseCase) Delete(ctx context.Context, rc tenant.RequestContext, id int64) error {
	if err := rc.Check(); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, rc.Namespace, id)
}

func (uc *ProductUseCase) load(ctx context.Context, ns tenant.Namespace, id int64) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, ns, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		Currency:     p.Currency,
		UnitPrice:    p.UnitPrice,
		InitialStock: p.InitialStock,
		Stock:        p.Stock,
		Active:       p.Active,
		Note:         p.Note,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
