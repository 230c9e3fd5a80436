package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/inventory"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// movementTable describe dónde vive cada tipo de movimiento.
type movementTable struct {
	table        string // purchases | sales
	counterparty string // columna de la contraparte
	other        string // tabla de la contraparte
}

var movementTables = map[inventory.Kind]movementTable{
	inventory.KindPurchase: {table: entity.TablePurchases, counterparty: "provider_id", other: entity.TableProviders},
	inventory.KindSale:     {table: entity.TableSales, counterparty: "client_id", other: entity.TableClients},
}

func tableFor(kind inventory.Kind) (movementTable, error) {
	t, ok := movementTables[kind]
	if !ok {
		return movementTable{}, fmt.Errorf("movement: tipo desconocido %q", kind)
	}
	return t, nil
}

// MovementRepo persiste compras y ventas (usable con pool o tx).
type MovementRepo struct {
	ex *Executor
}

// NewMovementRepository construye el adaptador de movimientos. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{ex: NewExecutor(q)}
}

func (t movementTable) selectSQL() string {
	return `
	SELECT m.id, m.product_id, p.name, m.` + t.counterparty + `, COALESCE(o.name, ''), m.date, m.quantity,
		m.currency, m.amount, m.invoice_number, m.note, m.created_at, m.updated_at
	FROM {` + t.table + `} m
	JOIN {products} p ON p.id = m.product_id
	LEFT JOIN {` + t.other + `} o ON o.id = m.` + t.counterparty
}

func scanMovement(kind inventory.Kind, row pgx.Row) (*entity.Movement, error) {
	m := entity.Movement{Kind: kind}
	err := row.Scan(&m.ID, &m.ProductID, &m.ProductName, &m.CounterpartyID, &m.CounterpartyName, &m.Date,
		&m.Quantity, &m.Currency, &m.Amount, &m.InvoiceNumber, &m.Note, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserta el movimiento. No toca el stock.
func (r *MovementRepo) Create(ctx context.Context, ns tenant.Namespace, m *entity.Movement) error {
	t, err := tableFor(m.Kind)
	if err != nil {
		return err
	}
	err = r.ex.QueryRow(ctx, ns, `
		INSERT INTO {`+t.table+`} (product_id, `+t.counterparty+`, date, quantity, currency, amount,
			invoice_number, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		m.ProductID, m.CounterpartyID, m.Date, m.Quantity, m.Currency, m.Amount,
		m.InvoiceNumber, m.Note, m.CreatedAt, m.UpdatedAt,
	).Scan(&m.ID)
	if err != nil {
		return mapError("insert "+t.table, err)
	}
	return nil
}

// GetByID obtiene un movimiento con nombres de producto y contraparte. nil si no existe.
func (r *MovementRepo) GetByID(ctx context.Context, ns tenant.Namespace, kind inventory.Kind, id int64) (*entity.Movement, error) {
	return r.get(ctx, ns, kind, id, "")
}

// GetForUpdate igual que GetByID pero bloquea la fila del movimiento hasta el fin de la tx.
func (r *MovementRepo) GetForUpdate(ctx context.Context, ns tenant.Namespace, kind inventory.Kind, id int64) (*entity.Movement, error) {
	return r.get(ctx, ns, kind, id, " FOR UPDATE OF m")
}

func (r *MovementRepo) get(ctx context.Context, ns tenant.Namespace, kind inventory.Kind, id int64, lock string) (*entity.Movement, error) {
	t, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	m, err := scanMovement(kind, r.ex.QueryRow(ctx, ns, t.selectSQL()+` WHERE m.id = $1`+lock, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", t.table, err)
	}
	return m, nil
}

// Update reescribe la fila del movimiento. El ajuste de stock lo hace el ledger.
func (r *MovementRepo) Update(ctx context.Context, ns tenant.Namespace, m *entity.Movement) error {
	t, err := tableFor(m.Kind)
	if err != nil {
		return err
	}
	n, err := r.ex.Exec(ctx, ns, `
		UPDATE {`+t.table+`} SET product_id = $2, `+t.counterparty+` = $3, date = $4, quantity = $5,
			currency = $6, amount = $7, invoice_number = $8, note = $9, updated_at = $10
		WHERE id = $1`,
		m.ID, m.ProductID, m.CounterpartyID, m.Date, m.Quantity, m.Currency, m.Amount,
		m.InvoiceNumber, m.Note, m.UpdatedAt,
	)
	if err != nil {
		return mapError("update "+t.table, err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la fila del movimiento.
func (r *MovementRepo) Delete(ctx context.Context, ns tenant.Namespace, kind inventory.Kind, id int64) error {
	t, err := tableFor(kind)
	if err != nil {
		return err
	}
	return r.ex.Delete(ctx, ns, t.table, id)
}

// List lista movimientos filtrados, más recientes primero, y devuelve el total sin paginar.
func (r *MovementRepo) List(ctx context.Context, ns tenant.Namespace, kind inventory.Kind, f repository.MovementFilter) ([]*entity.Movement, int64, error) {
	t, err := tableFor(kind)
	if err != nil {
		return nil, 0, err
	}
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.ProductID > 0 {
		add("m.product_id = $%d", f.ProductID)
	}
	if f.CounterpartyID > 0 {
		add("m."+t.counterparty+" = $%d", f.CounterpartyID)
	}
	if f.From != nil {
		add("m.date >= $%d", *f.From)
	}
	if f.To != nil {
		add("m.date <= $%d", *f.To)
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	total, err := r.ex.Count(ctx, ns, `SELECT count(*) FROM {`+t.table+`} m`+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", t.table, err)
	}
	page := fmt.Sprintf(" ORDER BY m.date DESC, m.id DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	rows, err := r.ex.Query(ctx, ns, t.selectSQL()+where+page, append(args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", t.table, err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(kind, rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan %s: %w", t.table, err)
		}
		list = append(list, m)
	}
	return list, total, rows.Err()
}

// CounterpartyExists verifica que exista el proveedor (compra) o cliente (venta).
func (r *MovementRepo) CounterpartyExists(ctx context.Context, ns tenant.Namespace, kind inventory.Kind, id int64) (bool, error) {
	t, err := tableFor(kind)
	if err != nil {
		return false, err
	}
	n, err := r.ex.Count(ctx, ns, `SELECT count(*) FROM {`+t.other+`} WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("check counterparty: %w", err)
	}
	return n > 0, nil
}
