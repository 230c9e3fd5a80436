package usecase_test

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria, indexados por namespace.
// ──────────────────────────────────────────────────────────────────────────────

type memCategories struct {
	rows   map[string]map[int64]*entity.Category
	nextID int64
}

func newMemCategories() *memCategories {
	return &memCategories{rows: map[string]map[int64]*entity.Category{}}
}

func (m *memCategories) of(ns tenant.Namespace) map[int64]*entity.Category {
	if m.rows[ns.String()] == nil {
		m.rows[ns.String()] = map[int64]*entity.Category{}
	}
	return m.rows[ns.String()]
}

func (m *memCategories) Create(_ context.Context, ns tenant.Namespace, c *entity.Category) error {
	m.nextID++
	c.ID = m.nextID
	cp := *c
	m.of(ns)[c.ID] = &cp
	return nil
}

func (m *memCategories) List(_ context.Context, ns tenant.Namespace) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range m.of(ns) {
		out = append(out, c)
	}
	return out, nil
}

func (m *memCategories) Exists(_ context.Context, ns tenant.Namespace, id int64) (bool, error) {
	_, ok := m.of(ns)[id]
	return ok, nil
}

func (m *memCategories) Delete(_ context.Context, ns tenant.Namespace, id int64) error {
	if _, ok := m.of(ns)[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.of(ns), id)
	return nil
}

type memProducts struct {
	rows   map[string]map[int64]*entity.Product
	nextID int64
	// inUse simula productos referenciados por movimientos (FK).
	inUse map[int64]bool
}

func newMemProducts() *memProducts {
	return &memProducts{rows: map[string]map[int64]*entity.Product{}, inUse: map[int64]bool{}}
}

func (m *memProducts) of(ns tenant.Namespace) map[int64]*entity.Product {
	if m.rows[ns.String()] == nil {
		m.rows[ns.String()] = map[int64]*entity.Product{}
	}
	return m.rows[ns.String()]
}

func (m *memProducts) Create(_ context.Context, ns tenant.Namespace, p *entity.Product) error {
	m.nextID++
	p.ID = m.nextID
	cp := *p
	m.of(ns)[p.ID] = &cp
	return nil
}

func (m *memProducts) GetByID(_ context.Context, ns tenant.Namespace, id int64) (*entity.Product, error) {
	p, ok := m.of(ns)[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memProducts) List(_ context.Context, ns tenant.Namespace, onlyActive bool, limit, offset int) ([]*entity.Product, int64, error) {
	var out []*entity.Product
	for id := int64(1); id <= m.nextID; id++ {
		p, ok := m.of(ns)[id]
		if !ok || (onlyActive && !p.Active) {
			continue
		}
		out = append(out, p)
	}
	total := int64(len(out))
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, total, nil
}

// Update emula el repositorio real: nunca escribe stock.
func (m *memProducts) Update(_ context.Context, ns tenant.Namespace, p *entity.Product) error {
	cur, ok := m.of(ns)[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cp := *p
	cp.Stock, cp.InitialStock = cur.Stock, cur.InitialStock
	m.of(ns)[p.ID] = &cp
	return nil
}

func (m *memProducts) Delete(_ context.Context, ns tenant.Namespace, id int64) error {
	if _, ok := m.of(ns)[id]; !ok {
		return domain.ErrNotFound
	}
	if m.inUse[id] {
		return domain.ErrConflict
	}
	delete(m.of(ns), id)
	return nil
}

type memProviders struct {
	rows   map[string]map[int64]*entity.Provider
	nextID int64
}

func newMemProviders() *memProviders {
	return &memProviders{rows: map[string]map[int64]*entity.Provider{}}
}

func (m *memProviders) of(ns tenant.Namespace) map[int64]*entity.Provider {
	if m.rows[ns.String()] == nil {
		m.rows[ns.String()] = map[int64]*entity.Provider{}
	}
	return m.rows[ns.String()]
}

func (m *memProviders) Create(_ context.Context, ns tenant.Namespace, p *entity.Provider) error {
	m.nextID++
	p.ID = m.nextID
	cp := *p
	m.of(ns)[p.ID] = &cp
	return nil
}

func (m *memProviders) GetByID(_ context.Context, ns tenant.Namespace, id int64) (*entity.Provider, error) {
	return m.of(ns)[id], nil
}

func (m *memProviders) List(_ context.Context, ns tenant.Namespace, limit, offset int) ([]*entity.Provider, int64, error) {
	var out []*entity.Provider
	for id := int64(1); id <= m.nextID; id++ {
		if p, ok := m.of(ns)[id]; ok {
			out = append(out, p)
		}
	}
	return out, int64(len(out)), nil
}

func (m *memProviders) Update(_ context.Context, ns tenant.Namespace, p *entity.Provider) error {
	if _, ok := m.of(ns)[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	m.of(ns)[p.ID] = &cp
	return nil
}

func (m *memProviders) Delete(_ context.Context, ns tenant.Namespace, id int64) error {
	if _, ok := m.of(ns)[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.of(ns), id)
	return nil
}

type memEmployees struct {
	rows   map[int64]*entity.Employee
	nextID int64
}

func newMemEmployees() *memEmployees {
	return &memEmployees{rows: map[int64]*entity.Employee{}}
}

func (m *memEmployees) Create(_ context.Context, _ tenant.Namespace, e *entity.Employee) error {
	for _, cur := range m.rows {
		if cur.CUIL == e.CUIL {
			return domain.ErrDuplicate
		}
	}
	m.nextID++
	e.ID = m.nextID
	cp := *e
	m.rows[e.ID] = &cp
	return nil
}

func (m *memEmployees) GetByID(_ context.Context, _ tenant.Namespace, id int64) (*entity.Employee, error) {
	e, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (m *memEmployees) List(_ context.Context, _ tenant.Namespace, includeInactive bool, limit, offset int) ([]*entity.Employee, int64, error) {
	var out []*entity.Employee
	for id := int64(1); id <= m.nextID; id++ {
		if e, ok := m.rows[id]; ok && (includeInactive || e.Active) {
			out = append(out, e)
		}
	}
	return out, int64(len(out)), nil
}

func (m *memEmployees) Update(_ context.Context, _ tenant.Namespace, e *entity.Employee) error {
	if _, ok := m.rows[e.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *e
	m.rows[e.ID] = &cp
	return nil
}

func (m *memEmployees) Deactivate(_ context.Context, _ tenant.Namespace, id int64) error {
	e, ok := m.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	e.Active = false
	return nil
}

type memInvoices struct {
	rows   []*entity.Invoice
	nextID int64
}

func (m *memInvoices) Create(_ context.Context, _ tenant.Namespace, inv *entity.Invoice) error {
	for _, cur := range m.rows {
		if cur.ProviderID == inv.ProviderID && cur.InvoiceNumber == inv.InvoiceNumber {
			return domain.ErrDuplicate
		}
	}
	m.nextID++
	inv.ID = m.nextID
	cp := *inv
	m.rows = append(m.rows, &cp)
	return nil
}

func (m *memInvoices) List(_ context.Context, _ tenant.Namespace, f repository.InvoiceFilter) ([]*entity.Invoice, int64, error) {
	var out []*entity.Invoice
	for _, inv := range m.rows {
		if (f.Year == 0 || inv.Year == f.Year) && (f.ProviderID == 0 || inv.ProviderID == f.ProviderID) {
			out = append(out, inv)
		}
	}
	return out, int64(len(out)), nil
}

func (m *memInvoices) Delete(_ context.Context, _ tenant.Namespace, id int64) error {
	for i, inv := range m.rows {
		if inv.ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memInvoices) SummaryByYear(_ context.Context, _ tenant.Namespace) ([]repository.InvoiceYearTotal, error) {
	var out []repository.InvoiceYearTotal
	for _, inv := range m.rows {
		found := false
		for i := range out {
			if out[i].Year == inv.Year && out[i].Currency == inv.Currency {
				out[i].Count++
				out[i].Total = out[i].Total.Add(inv.Amount)
				found = true
			}
		}
		if !found {
			out = append(out, repository.InvoiceYearTotal{Year: inv.Year, Currency: inv.Currency, Count: 1, Total: inv.Amount})
		}
	}
	return out, nil
}

type memUsers struct {
	rows   map[int64]*entity.User
	nextID int64
}

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	for _, cur := range m.rows {
		if cur.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	m.nextID++
	u.ID = m.nextID
	cp := *u
	m.rows[u.ID] = &cp
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id int64) (*entity.User, error) {
	return m.rows[id], nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.rows {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) ListByTenant(_ context.Context, tenantID int64) ([]*entity.User, error) {
	var out []*entity.User
	for id := int64(1); id <= m.nextID; id++ {
		if u, ok := m.rows[id]; ok && u.TenantID == tenantID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memUsers) DeleteInTenant(_ context.Context, tenantID, id int64) error {
	u, ok := m.rows[id]
	if !ok || u.TenantID != tenantID {
		return domain.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

type memTenants map[int64]*entity.Tenant

func (m memTenants) GetByID(_ context.Context, id int64) (*entity.Tenant, error) {
	t, ok := m[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (m memTenants) Update(_ context.Context, t *entity.Tenant) error {
	if _, ok := m[t.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *t
	m[t.ID] = &cp
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Contextos de petición
// ──────────────────────────────────────────────────────────────────────────────

func mustNS(name string) tenant.Namespace {
	ns, err := tenant.NewNamespace(name)
	if err != nil {
		panic(err)
	}
	return ns
}

var (
	adminA    = tenant.RequestContext{TenantID: 1, UserID: 1, Role: tenant.RoleAdmin, Namespace: mustNS("empresa_a")}
	operatorA = tenant.RequestContext{TenantID: 1, UserID: 2, Role: tenant.RoleOperator, Namespace: mustNS("empresa_a")}
	adminB    = tenant.RequestContext{TenantID: 2, UserID: 3, Role: tenant.RoleAdmin, Namespace: mustNS("empresa_b")}
)

func ptr[T any](v T) *T { return &v }
