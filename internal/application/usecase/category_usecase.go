package usecase

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

// CategoryUseCase categorías de productos y de empleados.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría.
func (uc *CategoryUseCase) Create(ctx context.Context, rc tenant.RequestContext, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	name, err := requireText("name", in.Name)
	if err != nil {
		return nil, err
	}
	c := &entity.Category{Name: name, Description: in.Description}
	if err := uc.repo.Create(ctx, rc.Namespace, c); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description}, nil
}

// List lista todas las categorías del tenant.
func (uc *CategoryUseCase) List(ctx context.Context, rc tenant.RequestContext) ([]dto.CategoryResponse, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx, rc.Namespace)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description})
	}
	return items, nil
}

// Delete elimina una categoría. Si está en uso el repositorio devuelve domain.ErrConflict.
func (uc *CategoryUseCase) Delete(ctx context.Context, rc tenant.RequestContext, id int64) error {
	if err := rc.Check(); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, rc.Namespace, id)
}

// checkCategory verifica que la categoría opcional exista en el tenant.
func checkCategory(ctx context.Context, repo repository.CategoryRepository, ns tenant.Namespace, id *int64) error {
	if id == nil {
		return nil
	}
	ok, err := repo.Exists(ctx, ns, *id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.Invalid("category_id", "categoría inexistente")
	}
	return nil
}
