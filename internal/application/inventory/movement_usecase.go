package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/inventory"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

// MovementUseCase registra, edita y elimina compras y ventas. Cada operación escribe la fila
// del movimiento y ajusta el stock en una única transacción.
type MovementUseCase struct {
	txRunner      TxRunner
	movements     repository.MovementRepository
	audit         repository.StockAuditRepository
	allowNegative bool
	now           func() time.Time
}

// NewMovementUseCase construye el caso de uso. movements y audit son lecturas fuera de transacción.
func NewMovementUseCase(
	txRunner TxRunner,
	movements repository.MovementRepository,
	audit repository.StockAuditRepository,
	allowNegativeStock bool,
) *MovementUseCase {
	return &MovementUseCase{
		txRunner:      txRunner,
		movements:     movements,
		audit:         audit,
		allowNegative: allowNegativeStock,
		now:           time.Now,
	}
}

func (uc *MovementUseCase) toMovement(kind inventory.Kind, in dto.MovementRequest) (*entity.Movement, error) {
	if in.ProductID <= 0 {
		return nil, domain.Invalid("product_id", "obligatorio")
	}
	if in.CounterpartyID <= 0 {
		return nil, domain.Invalid("counterparty_id", "obligatorio")
	}
	if in.Quantity <= 0 {
		return nil, domain.Invalid("quantity", "debe ser mayor a cero")
	}
	if in.Amount.IsNegative() {
		return nil, domain.Invalid("amount", "no puede ser negativo")
	}
	currency, ok := entity.NormalizeCurrency(in.Currency)
	if !ok {
		return nil, domain.Invalid("currency", "código de moneda inválido")
	}
	date, err := dto.ParseDate("date", in.Date)
	if err != nil {
		return nil, err
	}
	return &entity.Movement{
		Kind:           kind,
		ProductID:      in.ProductID,
		CounterpartyID: in.CounterpartyID,
		Date:           date,
		Quantity:       in.Quantity,
		Currency:       currency,
		Amount:         in.Amount,
		InvoiceNumber:  strings.TrimSpace(in.InvoiceNumber),
		Note:           strings.TrimSpace(in.Note),
	}, nil
}

func checkCounterparty(ctx context.Context, repo repository.MovementRepository, ns tenant.Namespace, kind inventory.Kind, id int64) error {
	ok, err := repo.CounterpartyExists(ctx, ns, kind, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.Invalid("counterparty_id", "no existe")
	}
	return nil
}

// Create registra una compra o venta y aplica su efecto sobre el stock.
func (uc *MovementUseCase) Create(ctx context.Context, rc tenant.RequestContext, kind inventory.Kind, in dto.MovementRequest) (*dto.MovementResponse, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	m, err := uc.toMovement(kind, in)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	m.CreatedAt, m.UpdatedAt = now, now

	var (
		saved *entity.Movement
		stock int64
	)
	err = uc.txRunner.Run(ctx, func(r LedgerRepos) error {
		if err := checkCounterparty(ctx, r.Movements, rc.Namespace, kind, m.CounterpartyID); err != nil {
			return err
		}
		ledger := NewLedger(r.Stock, uc.allowNegative)
		s, err := ledger.ApplyMovement(ctx, rc.Namespace, m.ProductID, m.SignedQuantity())
		if err != nil {
			return err
		}
		if err := r.Movements.Create(ctx, rc.Namespace, m); err != nil {
			return err
		}
		saved, err = r.Movements.GetByID(ctx, rc.Namespace, kind, m.ID)
		if err != nil {
			return err
		}
		stock = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	if saved == nil {
		saved = m
	}
	return toMovementResponse(saved, &stock), nil
}

// Update edita un movimiento y reajusta el stock: si cambió el producto revierte la cantidad
// anterior en el producto viejo y aplica la nueva en el nuevo; si no, ajusta la diferencia.
func (uc *MovementUseCase) Update(ctx context.Context, rc tenant.RequestContext, kind inventory.Kind, id int64, in dto.MovementRequest) (*dto.MovementResponse, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	m, err := uc.toMovement(kind, in)
	if err != nil {
		return nil, err
	}
	m.ID = id
	m.UpdatedAt = uc.now()

	var (
		saved *entity.Movement
		stock int64
	)
	err = uc.txRunner.Run(ctx, func(r LedgerRepos) error {
		old, err := r.Movements.GetForUpdate(ctx, rc.Namespace, kind, id)
		if err != nil {
			return err
		}
		if old == nil {
			return domain.ErrNotFound
		}
		if old.CounterpartyID != m.CounterpartyID {
			if err := checkCounterparty(ctx, r.Movements, rc.Namespace, kind, m.CounterpartyID); err != nil {
				return err
			}
		}
		m.CreatedAt = old.CreatedAt

		ledger := NewLedger(r.Stock, uc.allowNegative)
		if old.ProductID != m.ProductID {
			stock, err = uc.moveBetweenProducts(ctx, ledger, rc.Namespace, old, m)
		} else {
			stock, err = ledger.RebalanceOnEdit(ctx, rc.Namespace, m.ProductID, kind, old.Quantity, m.Quantity)
		}
		if err != nil {
			return err
		}
		if err := r.Movements.Update(ctx, rc.Namespace, m); err != nil {
			return err
		}
		saved, err = r.Movements.GetByID(ctx, rc.Namespace, kind, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if saved == nil {
		saved = m
	}
	return toMovementResponse(saved, &stock), nil
}

// moveBetweenProducts revierte old en su producto y aplica m en el nuevo. Las filas de
// products se bloquean siempre en orden ascendente de id para que dos ediciones cruzadas no
// queden esperándose. Devuelve el stock del producto nuevo.
func (uc *MovementUseCase) moveBetweenProducts(ctx context.Context, ledger *Ledger, ns tenant.Namespace, old, m *entity.Movement) (int64, error) {
	if old.ProductID < m.ProductID {
		if _, err := ledger.ReverseMovement(ctx, ns, old.ProductID, old.SignedQuantity()); err != nil {
			return 0, err
		}
		return ledger.ApplyMovement(ctx, ns, m.ProductID, m.SignedQuantity())
	}
	stock, err := ledger.ApplyMovement(ctx, ns, m.ProductID, m.SignedQuantity())
	if err != nil {
		return 0, err
	}
	if _, err := ledger.ReverseMovement(ctx, ns, old.ProductID, old.SignedQuantity()); err != nil {
		return 0, err
	}
	return stock, nil
}

// Delete elimina un movimiento y revierte su efecto sobre el stock.
func (uc *MovementUseCase) Delete(ctx context.Context, rc tenant.RequestContext, kind inventory.Kind, id int64) error {
	if err := rc.Check(); err != nil {
		return err
	}
	return uc.txRunner.Run(ctx, func(r LedgerRepos) error {
		old, err := r.Movements.GetForUpdate(ctx, rc.Namespace, kind, id)
		if err != nil {
			return err
		}
		if old == nil {
			return domain.ErrNotFound
		}
		if err := r.Movements.Delete(ctx, rc.Namespace, kind, id); err != nil {
			return err
		}
		_, err = NewLedger(r.Stock, uc.allowNegative).ReverseMovement(ctx, rc.Namespace, old.ProductID, old.SignedQuantity())
		return err
	})
}

// Get obtiene un movimiento por ID.
func (uc *MovementUseCase) Get(ctx context.Context, rc tenant.RequestContext, kind inventory.Kind, id int64) (*dto.MovementResponse, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	m, err := uc.movements.GetByID(ctx, rc.Namespace, kind, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return toMovementResponse(m, nil), nil
}

// List lista movimientos con filtros y paginación.
func (uc *MovementUseCase) List(ctx context.Context, rc tenant.RequestContext, kind inventory.Kind, in dto.MovementFilterRequest) (*dto.MovementListResponse, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	in.DefaultPage()
	from, err := dto.ParseOptionalDate("from", in.From)
	if err != nil {
		return nil, err
	}
	to, err := dto.ParseOptionalDate("to", in.To)
	if err != nil {
		return nil, err
	}
	list, total, err := uc.movements.List(ctx, rc.Namespace, kind, repository.MovementFilter{
		ProductID:      in.ProductID,
		CounterpartyID: in.CounterpartyID,
		From:           from,
		To:             to,
		Limit:          in.Limit,
		Offset:         in.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m, nil))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// StockAudit concilia stock = inicial + Σ compras - Σ ventas para un producto.
func (uc *MovementUseCase) StockAudit(ctx context.Context, rc tenant.RequestContext, productID int64) (*dto.StockAuditResponse, error) {
	if err := rc.Check(); err != nil {
		return nil, err
	}
	a, err := uc.audit.Audit(ctx, rc.Namespace, productID)
	if err != nil {
		return nil, err
	}
	expected := a.InitialStock + a.Purchased - a.Sold
	return &dto.StockAuditResponse{
		ProductID:     a.ProductID,
		InitialStock:  a.InitialStock,
		Purchased:     a.Purchased,
		Sold:          a.Sold,
		ExpectedStock: expected,
		ActualStock:   a.Stock,
		Consistent:    expected == a.Stock,
	}, nil
}

func toMovementResponse(m *entity.Movement, stock *int64) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:               m.ID,
		Kind:             string(m.Kind),
		ProductID:        m.ProductID,
		ProductName:      m.ProductName,
		CounterpartyID:   m.CounterpartyID,
		CounterpartyName: m.CounterpartyName,
		Date:             dto.FormatDate(m.Date),
		Quantity:         m.Quantity,
		Currency:         m.Currency,
		Amount:           m.Amount,
		InvoiceNumber:    m.InvoiceNumber,
		Note:             m.Note,
		Stock:            stock,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
