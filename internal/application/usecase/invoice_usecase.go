package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

// InvoiceUseCase registro de facturación recibida. No modifica stock.
type InvoiceUseCase struct {
	repo      repository.InvoiceRepository
	providers repository.ProviderRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository, providers repository.ProviderRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, providers: providers}
}

// Create registra una factura. El par proveedor + número es único (domain.ErrDuplicate).
func (uc *InvoiceUseCase) Create(ctx context.Context, rc tenant.RequestContext, in dto.InvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	date, err := dto.ParseDate("date", in.Date)
	if err != nil {
		return nil, err
	}
	number, err := requireText("invoice_number", in.InvoiceNumber)
	if err != nil {
		return nil, err
	}
	if !in.Amount.IsPositive() {
		return nil, domain.Invalid("amount", "debe ser mayor a cero")
	}
	currency, ok := entity.NormalizeCurrency(in.Currency)
	if !ok {
		return nil, domain.Invalid("currency", "código ISO 4217 de 3 letras")
	}
	provider, err := uc.providers.GetByID(ctx, rc.Namespace, in.ProviderID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, domain.Invalid("provider_id", "proveedor inexistente")
	}
	inv := &entity.Invoice{
		Date:          date,
		Year:          date.Year(),
		ProviderID:    provider.ID,
		ProviderName:  provider.Name,
		InvoiceNumber: number,
		Description:   strings.TrimSpace(in.Description),
		Amount:        in.Amount,
		Currency:      currency,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(ctx, rc.Namespace, inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

// List lista facturas filtrando por año y proveedor.
func (uc *InvoiceUseCase) List(ctx context.Context, rc tenant.RequestContext, in dto.InvoiceFilterRequest) (*dto.InvoiceListResponse, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	in.DefaultPage()
	list, total, err := uc.repo.List(ctx, rc.Namespace, repository.InvoiceFilter{
		Year:       in.Year,
		ProviderID: in.ProviderID,
		Limit:      in.Limit,
		Offset:     in.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInvoiceResponse(inv))
	}
	return &dto.InvoiceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// Delete elimina una factura.
func (uc *InvoiceUseCase) Delete(ctx context.Context, rc tenant.RequestContext, id int64) error {
	if err := rc.Check(); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, rc.Namespace, id)
}

// SummaryByYear devuelve cantidad y total facturado por año y moneda.
func (uc *InvoiceUseCase) SummaryByYear(ctx context.Context, rc tenant.RequestContext) ([]dto.InvoiceYearSummary, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	rows, err := uc.repo.SummaryByYear(ctx, rc.Namespace)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceYearSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.InvoiceYearSummary{Year: r.Year, Currency: r.Currency, Count: r.Count, Total: r.Total})
	}
	return out, nil
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:            inv.ID,
		Date:          dto.FormatDate(inv.Date),
		Year:          inv.Year,
		ProviderID:    inv.ProviderID,
		ProviderName:  inv.ProviderName,
		InvoiceNumber: inv.InvoiceNumber,
		Description:   inv.Description,
		Amount:        inv.Amount,
		Currency:      inv.Currency,
		CreatedAt:     inv.CreatedAt,
	}
}
