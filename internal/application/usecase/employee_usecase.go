package usecase

import (
	"context"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

// EmployeeUseCase legajo de empleados. Los empleados se desactivan, nunca se borran.
type EmployeeUseCase struct {
	repo       repository.EmployeeRepository
	categories repository.CategoryRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, categories repository.CategoryRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, categories: categories}
}

// normalizeName colapsa espacios y capitaliza cada palabra ("  pérez  gómez" -> "Pérez Gómez").
// cases.Caser guarda estado: se crea uno por llamada.
func normalizeName(s string) string {
	return cases.Title(language.Spanish).String(strings.Join(strings.Fields(s), " "))
}

func (uc *EmployeeUseCase) fromRequest(ctx context.Context, ns tenant.Namespace, in dto.EmployeeRequest) (*entity.Employee, error) {
	surname := normalizeName(in.Surname)
	if surname == "" {
		return nil, domain.Invalid("surname", "obligatorio")
	}
	if strings.TrimSpace(in.CUIL) == "" {
		return nil, domain.Invalid("cuil", "obligatorio")
	}
	cuil, err := normalizeTaxID("cuil", in.CUIL)
	if err != nil {
		return nil, err
	}
	hireDate, err := dto.ParseDate("hire_date", in.HireDate)
	if err != nil {
		return nil, err
	}
	if err := checkCategory(ctx, uc.categories, ns, in.CategoryID); err != nil {
		return nil, err
	}
	return &entity.Employee{
		CUIL:       cuil,
		DocumentID: strings.TrimSpace(in.DocumentID),
		Surname:    surname,
		Name:       normalizeName(in.Name),
		HireDate:   hireDate,
		CategoryID: in.CategoryID,
		Active:     true,
	}, nil
}

// Create da de alta un empleado activo. CUIL repetido devuelve domain.ErrDuplicate.
func (uc *EmployeeUseCase) Create(ctx context.Context, rc tenant.RequestContext, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	e, err := uc.fromRequest(ctx, rc.Namespace, in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	e.CreatedAt, e.UpdatedAt = now, now
	if err := uc.repo.Create(ctx, rc.Namespace, e); err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// Get obtiene un empleado (activo o no) por ID.
func (uc *EmployeeUseCase) Get(ctx context.Context, rc tenant.RequestContext, id int64) (*dto.EmployeeResponse, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	e, err := uc.load(ctx, rc.Namespace, id)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// Update reemplaza los datos del legajo. No cambia el estado activo.
func (uc *EmployeeUseCase) Update(ctx context.Context, rc tenant.RequestContext, id int64, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	current, err := uc.load(ctx, rc.Namespace, id)
	if err != nil {
		return nil, err
	}
	e, err := uc.fromRequest(ctx, rc.Namespace, in)
	if err != nil {
		return nil, err
	}
	e.ID = current.ID
	e.Active = current.Active
	e.CreatedAt = current.CreatedAt
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, rc.Namespace, e); err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// List lista empleados; por defecto solo los activos.
func (uc *EmployeeUseCase) List(ctx context.Context, rc tenant.RequestContext, includeInactive bool, page dto.PageRequest) (*dto.EmployeeListResponse, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	page.DefaultPage()
	list, total, err := uc.repo.List(ctx, rc.Namespace, includeInactive, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return &dto.EmployeeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Deactivate da de baja al empleado (borrado lógico). Sus recibos se conservan.
func (uc *EmployeeUseCase) Deactivate(ctx context.Context, rc tenant.RequestContext, id int64) error {
	if err := rc.Check(); err != nil {
		return err
	}
	return uc.repo.Deactivate(ctx, rc.Namespace, id)
}

func (uc *EmployeeUseCase) load(ctx context.Context, ns tenant.Namespace, id int64) (*entity.Employee, error) {
	e, err := uc.repo.GetByID(ctx, ns, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:           e.ID,
		CUIL:         e.CUIL,
		DocumentID:   e.DocumentID,
		Surname:      e.Surname,
		Name:         e.Name,
		FullName:     e.FullName(),
		HireDate:     dto.FormatDate(e.HireDate),
		CategoryID:   e.CategoryID,
		CategoryName: e.CategoryName,
		Active:       e.Active,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
