package inventory_test

import (
	"context"
	"errors"
	"sort"

	"github.com/jhoicas/Gestion-api/internal/application/inventory"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Gestion-api/internal/domain/inventory"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

// ──────────────────────────────────────────────────────────────────────────────
// Store en memoria: un conjunto de tablas por namespace, con rollback por snapshot.
// ──────────────────────────────────────────────────────────────────────────────

type memProduct struct {
	initial int64
	stock   int64
}

type memTenant struct {
	products       map[int64]*memProduct
	movements      map[domaininv.Kind]map[int64]entity.Movement
	counterparties map[domaininv.Kind]map[int64]bool
}

func newMemTenant() *memTenant {
	return &memTenant{
		products: map[int64]*memProduct{},
		movements: map[domaininv.Kind]map[int64]entity.Movement{
			domaininv.KindPurchase: {},
			domaininv.KindSale:     {},
		},
		counterparties: map[domaininv.Kind]map[int64]bool{
			domaininv.KindPurchase: {},
			domaininv.KindSale:     {},
		},
	}
}

func (t *memTenant) clone() *memTenant {
	out := newMemTenant()
	for id, p := range t.products {
		cp := *p
		out.products[id] = &cp
	}
	for k, m := range t.movements {
		for id, mv := range m {
			out.movements[k][id] = mv
		}
	}
	for k, m := range t.counterparties {
		for id, v := range m {
			out.counterparties[k][id] = v
		}
	}
	return out
}

type memStore struct {
	tenants map[string]*memTenant
	nextID  int64
	// stockErr simula una falla de infraestructura en el paso de stock.
	stockErr error
	// movementErr simula una falla al escribir la fila del movimiento.
	movementErr error
	// touched registra el orden en que se modificó el stock de cada producto.
	touched []int64
}

func newMemStore() *memStore {
	return &memStore{tenants: map[string]*memTenant{}, nextID: 100}
}

func (s *memStore) tenant(ns tenant.Namespace) *memTenant {
	t, ok := s.tenants[ns.String()]
	if !ok {
		t = newMemTenant()
		s.tenants[ns.String()] = t
	}
	return t
}

func (s *memStore) addProduct(ns tenant.Namespace, id, initial int64) {
	s.tenant(ns).products[id] = &memProduct{initial: initial, stock: initial}
}

func (s *memStore) addCounterparty(ns tenant.Namespace, kind domaininv.Kind, id int64) {
	s.tenant(ns).counterparties[kind][id] = true
}

func (s *memStore) stock(ns tenant.Namespace, id int64) int64 {
	return s.tenant(ns).products[id].stock
}

func (s *memStore) movementCount(ns tenant.Namespace, kind domaininv.Kind) int {
	return len(s.tenant(ns).movements[kind])
}

func (s *memStore) snapshot() map[string]*memTenant {
	out := make(map[string]*memTenant, len(s.tenants))
	for k, t := range s.tenants {
		out[k] = t.clone()
	}
	return out
}

// ── TxRunner ─────────────────────────────────────────────────────────────────

type memTxRunner struct{ s *memStore }

var _ inventory.TxRunner = memTxRunner{}

func (r memTxRunner) Run(_ context.Context, fn func(inventory.LedgerRepos) error) error {
	snap := r.s.snapshot()
	err := fn(inventory.LedgerRepos{Movements: memMovements{r.s}, Stock: memStock{r.s}})
	if err != nil {
		r.s.tenants = snap
	}
	return err
}

// ── StockRepository / StockAuditRepository ──────────────────────────────────

type memStock struct{ s *memStore }

var (
	_ repository.StockRepository      = memStock{}
	_ repository.StockAuditRepository = memStock{}
)

func (m memStock) AddDelta(_ context.Context, ns tenant.Namespace, productID, delta int64, allowNegative bool) (int64, error) {
	if m.s.stockErr != nil {
		return 0, m.s.stockErr
	}
	p, ok := m.s.tenant(ns).products[productID]
	if !ok {
		return 0, domain.ErrProductNotFound
	}
	if !allowNegative && p.stock+delta < 0 {
		return 0, domain.ErrInsufficientStock
	}
	p.stock += delta
	m.s.touched = append(m.s.touched, productID)
	return p.stock, nil
}

func (m memStock) Audit(_ context.Context, ns tenant.Namespace, productID int64) (*repository.StockAudit, error) {
	t := m.s.tenant(ns)
	p, ok := t.products[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	a := &repository.StockAudit{ProductID: productID, InitialStock: p.initial, Stock: p.stock}
	for _, mv := range t.movements[domaininv.KindPurchase] {
		if mv.ProductID == productID {
			a.Purchased += mv.Quantity
		}
	}
	for _, mv := range t.movements[domaininv.KindSale] {
		if mv.ProductID == productID {
			a.Sold += mv.Quantity
		}
	}
	return a, nil
}

// ── MovementRepository ───────────────────────────────────────────────────────

type memMovements struct{ s *memStore }

var _ repository.MovementRepository = memMovements{}

func (m memMovements) Create(_ context.Context, ns tenant.Namespace, mv *entity.Movement) error {
	if m.s.movementErr != nil {
		return m.s.movementErr
	}
	t := m.s.tenant(ns)
	if _, ok := t.products[mv.ProductID]; !ok {
		return domain.ErrConflict
	}
	m.s.nextID++
	mv.ID = m.s.nextID
	t.movements[mv.Kind][mv.ID] = *mv
	return nil
}

func (m memMovements) GetByID(_ context.Context, ns tenant.Namespace, kind domaininv.Kind, id int64) (*entity.Movement, error) {
	mv, ok := m.s.tenant(ns).movements[kind][id]
	if !ok {
		return nil, nil
	}
	return &mv, nil
}

func (m memMovements) GetForUpdate(ctx context.Context, ns tenant.Namespace, kind domaininv.Kind, id int64) (*entity.Movement, error) {
	return m.GetByID(ctx, ns, kind, id)
}

func (m memMovements) Update(_ context.Context, ns tenant.Namespace, mv *entity.Movement) error {
	if m.s.movementErr != nil {
		return m.s.movementErr
	}
	t := m.s.tenant(ns)
	if _, ok := t.movements[mv.Kind][mv.ID]; !ok {
		return domain.ErrNotFound
	}
	t.movements[mv.Kind][mv.ID] = *mv
	return nil
}

func (m memMovements) Delete(_ context.Context, ns tenant.Namespace, kind domaininv.Kind, id int64) error {
	t := m.s.tenant(ns)
	if _, ok := t.movements[kind][id]; !ok {
		return domain.ErrNotFound
	}
	delete(t.movements[kind], id)
	return nil
}

func (m memMovements) List(_ context.Context, ns tenant.Namespace, kind domaininv.Kind, f repository.MovementFilter) ([]*entity.Movement, int64, error) {
	var all []*entity.Movement
	for _, mv := range m.s.tenant(ns).movements[kind] {
		if f.ProductID > 0 && mv.ProductID != f.ProductID {
			continue
		}
		if f.CounterpartyID > 0 && mv.CounterpartyID != f.CounterpartyID {
			continue
		}
		if f.From != nil && mv.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && mv.Date.After(*f.To) {
			continue
		}
		cp := mv
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	total := int64(len(all))
	if f.Offset >= len(all) {
		return nil, total, nil
	}
	end := f.Offset + f.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[f.Offset:end], total, nil
}

func (m memMovements) CounterpartyExists(_ context.Context, ns tenant.Namespace, kind domaininv.Kind, id int64) (bool, error) {
	return m.s.tenant(ns).counterparties[kind][id], nil
}

var errDiskFull = errors.New("could not extend file: no space left on device")
