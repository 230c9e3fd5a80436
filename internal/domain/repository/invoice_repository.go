package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

// InvoiceFilter filtros de listado de facturación.
type InvoiceFilter struct {
	Year          int
	ProviderID    int64
	Limit, Offset int
}

// InvoiceYearTotal total facturado en un año y moneda.
type InvoiceYearTotal struct {
	Year     int
	Currency string
	Count    int64
	Total    decimal.Decimal
}

// InvoiceRepository define el puerto de persistencia para facturación.
type InvoiceRepository interface {
	Create(ctx context.Context, ns tenant.Namespace, inv *entity.Invoice) error
	List(ctx context.Context, ns tenant.Namespace, f InvoiceFilter) ([]*entity.Invoice, int64, error)
	Delete(ctx context.Context, ns tenant.Namespace, id int64) error
	SummaryByYear(ctx context.Context, ns tenant.Namespace) ([]InvoiceYearTotal, error)
}
