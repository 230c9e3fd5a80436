package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository (usable con pool o tx).
type EmployeeRepo struct {
	ex *Executor
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{ex: NewExecutor(q)}
}

const employeeSelect = `
	SELECT e.id, e.cuil, e.document_id, e.surname, e.name, e.hire_date, e.category_id,
		COALESCE(c.name, ''), e.active, e.created_at, e.updated_at
	FROM {employees} e
	LEFT JOIN {categories} c ON c.id = e.category_id`

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(&e.ID, &e.CUIL, &e.DocumentID, &e.Surname, &e.Name, &e.HireDate, &e.CategoryID,
		&e.CategoryName, &e.Active, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create persiste un empleado.
func (r *EmployeeRepo) Create(ctx context.Context, ns tenant.Namespace, e *entity.Employee) error {
	err := r.ex.QueryRow(ctx, ns, `
		INSERT INTO {employees} (cuil, document_id, surname, name, hire_date, category_id, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		e.CUIL, e.DocumentID, e.Surname, e.Name, e.HireDate, e.CategoryID, e.Active, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		return mapError("insert employee", err)
	}
	return nil
}

// GetByID obtiene un empleado (activo o no). nil si no existe.
func (r *EmployeeRepo) GetByID(ctx context.Context, ns tenant.Namespace, id int64) (*entity.Employee, error) {
	e, err := scanEmployee(r.ex.QueryRow(ctx, ns, employeeSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// List lista empleados por apellido y nombre.
func (r *EmployeeRepo) List(ctx context.Context, ns tenant.Namespace, includeInactive bool, limit, offset int) ([]*entity.Employee, int64, error) {
	total, err := r.ex.Count(ctx, ns,
		`SELECT count(*) FROM {employees} e WHERE ($1::boolean OR e.active)`, includeInactive)
	if err != nil {
		return nil, 0, fmt.Errorf("count employees: %w", err)
	}
	rows, err := r.ex.Query(ctx, ns,
		employeeSelect+` WHERE ($1::boolean OR e.active) ORDER BY e.surname, e.name LIMIT $2 OFFSET $3`,
		includeInactive, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, total, rows.Err()
}

// Update actualiza los datos del empleado.
func (r *EmployeeRepo) Update(ctx context.Context, ns tenant.Namespace, e *entity.Employee) error {
	n, err := r.ex.Exec(ctx, ns, `
		UPDATE {employees} SET cuil = $2, document_id = $3, surname = $4, name = $5, hire_date = $6,
			category_id = $7, active = $8, updated_at = $9
		WHERE id = $1`,
		e.ID, e.CUIL, e.DocumentID, e.Surname, e.Name, e.HireDate, e.CategoryID, e.Active, e.UpdatedAt,
	)
	if err != nil {
		return mapError("update employee", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Deactivate da de baja al empleado (borrado lógico).
func (r *EmployeeRepo) Deactivate(ctx context.Context, ns tenant.Namespace, id int64) error {
	return r.ex.Delete(ctx, ns, entity.TableEmployees, id)
}
