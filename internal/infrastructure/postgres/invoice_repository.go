package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	ex *Executor
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{ex: NewExecutor(q)}
}

const invoiceSelect = `
	SELECT i.id, i.date, i.year, i.provider_id, COALESCE(p.name, ''), i.invoice_number, i.description,
		i.amount, i.currency, i.created_at
	FROM {invoices} i
	LEFT JOIN {providers} p ON p.id = i.provider_id`

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var i entity.Invoice
	err := row.Scan(&i.ID, &i.Date, &i.Year, &i.ProviderID, &i.ProviderName, &i.InvoiceNumber,
		&i.Description, &i.Amount, &i.Currency, &i.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// Create persiste la factura. Year se deriva de Date.
func (r *InvoiceRepo) Create(ctx context.Context, ns tenant.Namespace, inv *entity.Invoice) error {
	inv.Year = inv.Date.Year()
	err := r.ex.QueryRow(ctx, ns, `
		INSERT INTO {invoices} (date, year, provider_id, invoice_number, description, amount, currency, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		inv.Date, inv.Year, inv.ProviderID, inv.InvoiceNumber, inv.Description, inv.Amount, inv.Currency, inv.CreatedAt,
	).Scan(&inv.ID)
	if err != nil {
		return mapError("insert invoice", err)
	}
	return nil
}

// List lista facturas filtradas por año y proveedor.
func (r *InvoiceRepo) List(ctx context.Context, ns tenant.Namespace, f repository.InvoiceFilter) ([]*entity.Invoice, int64, error) {
	var (
		conds []string
		args  []any
	)
	if f.Year > 0 {
		args = append(args, f.Year)
		conds = append(conds, fmt.Sprintf("i.year = $%d", len(args)))
	}
	if f.ProviderID > 0 {
		args = append(args, f.ProviderID)
		conds = append(conds, fmt.Sprintf("i.provider_id = $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}
	total, err := r.ex.Count(ctx, ns, `SELECT count(*) FROM {invoices} i`+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("count invoices: %w", err)
	}
	page := fmt.Sprintf(" ORDER BY i.date DESC, i.id DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	rows, err := r.ex.Query(ctx, ns, invoiceSelect+where+page, append(args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		i, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, i)
	}
	return list, total, rows.Err()
}

// Delete elimina una factura.
func (r *InvoiceRepo) Delete(ctx context.Context, ns tenant.Namespace, id int64) error {
	return r.ex.Delete(ctx, ns, entity.TableInvoices, id)
}

// SummaryByYear agrupa cantidad e importe facturado por año y moneda.
func (r *InvoiceRepo) SummaryByYear(ctx context.Context, ns tenant.Namespace) ([]repository.InvoiceYearTotal, error) {
	rows, err := r.ex.Query(ctx, ns, `
		SELECT year, currency, count(*), COALESCE(SUM(amount), 0)
		FROM {invoices}
		GROUP BY year, currency
		ORDER BY year DESC, currency`)
	if err != nil {
		return nil, fmt.Errorf("invoice summary: %w", err)
	}
	defer rows.Close()
	var out []repository.InvoiceYearTotal
	for rows.Next() {
		var t repository.InvoiceYearTotal
		if err := rows.Scan(&t.Year, &t.Currency, &t.Count, &t.Total); err != nil {
			return nil, fmt.Errorf("scan invoice summary: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
