package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
	"github.com/jhoicas/Gestion-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProducto_CrearConStockInicial(t *testing.T) {
	cats := newMemCategories()
	products := newMemProducts()
	uc := usecase.NewProductUseCase(products, cats)
	ctx := context.Background()

	cat, err := usecase.NewCategoryUseCase(cats).Create(ctx, adminA, dto.CategoryRequest{Name: "Tornillería"})
	require.NoError(t, err)

	p, err := uc.Create(ctx, operatorA, dto.CreateProductRequest{
		Name:         " Tornillo 3mm ",
		CategoryID:   &cat.ID,
		Currency:     "usd",
		UnitPrice:    decimal.RequireFromString("12.50"),
		InitialStock: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "Tornillo 3mm", p.Name)
	assert.Equal(t, "USD", p.Currency)
	assert.Equal(t, int64(10), p.InitialStock)
	assert.Equal(t, int64(10), p.Stock)
	assert.True(t, p.Active)

	// el producto no es visible desde otro tenant
	_, err = uc.Get(ctx, adminB, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProducto_ActualizarNoTocaStock(t *testing.T) {
	products := newMemProducts()
	uc := usecase.NewProductUseCase(products, newMemCategories())
	ctx := context.Background()

	p, err := uc.Create(ctx, adminA, dto.CreateProductRequest{Name: "Martillo", InitialStock: 5})
	require.NoError(t, err)
	assert.Equal(t, "ARS", p.Currency)

	out, err := uc.Update(ctx, adminA, p.ID, dto.UpdateProductRequest{
		Name:      ptr("Martillo galponero"),
		UnitPrice: ptr(decimal.NewFromInt(900)),
		Active:    ptr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "Martillo galponero", out.Name)
	assert.Equal(t, int64(5), out.Stock)
	assert.False(t, out.Active)

	list, err := uc.List(ctx, adminA, true, dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Items)
	assert.Equal(t, 20, list.Page.Limit)

	_, err = uc.Update(ctx, adminA, p.ID, dto.UpdateProductRequest{CategoryID: ptr(int64(77))})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Update(ctx, adminA, 999, dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProducto_Validaciones(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProducts(), newMemCategories())
	casos := map[string]dto.CreateProductRequest{
		"sin nombre":            {InitialStock: 1},
		"stock negativo":        {Name: "X", InitialStock: -1},
		"precio negativo":       {Name: "X", UnitPrice: decimal.NewFromInt(-1)},
		"moneda inválida":       {Name: "X", Currency: "PESOS"},
		"categoría inexistente": {Name: "X", CategoryID: ptr(int64(5))},
	}
	for name, req := range casos {
		_, err := uc.Create(context.Background(), adminA, req)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, name)
	}
}

func TestProducto_EliminarConMovimientos_Conflicto(t *testing.T) {
	products := newMemProducts()
	uc := usecase.NewProductUseCase(products, newMemCategories())
	ctx := context.Background()

	p, err := uc.Create(ctx, adminA, dto.CreateProductRequest{Name: "Pala"})
	require.NoError(t, err)
	products.inUse[p.ID] = true
	assert.ErrorIs(t, uc.Delete(ctx, adminA, p.ID), domain.ErrConflict)

	products.inUse[p.ID] = false
	assert.NoError(t, uc.Delete(ctx, adminA, p.ID))
}

// ──────────────────────────────────────────────────────────────────────────────
// Proveedores y clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestProveedor_CUITValidado(t *testing.T) {
	uc := usecase.NewProviderUseCase(newMemProviders())
	ctx := context.Background()

	p, err := uc.Create(ctx, operatorA, dto.CounterpartyRequest{Name: "Aceros SA", TaxID: "30.71234567.1"})
	require.NoError(t, err)
	assert.Equal(t, "30-71234567-1", p.TaxID)

	_, err = uc.Create(ctx, operatorA, dto.CounterpartyRequest{Name: "Malo", TaxID: "30-71234567-2"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// sin CUIT se acepta
	_, err = uc.Create(ctx, operatorA, dto.CounterpartyRequest{Name: "Informal"})
	require.NoError(t, err)

	upd, err := uc.Update(ctx, operatorA, p.ID, dto.CounterpartyRequest{Name: "Aceros del Sur SA", TaxID: p.TaxID})
	require.NoError(t, err)
	assert.Equal(t, "Aceros del Sur SA", upd.Name)

	_, err = uc.Update(ctx, adminB, p.ID, dto.CounterpartyRequest{Name: "Ajeno"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := uc.List(ctx, operatorA, dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), list.Page.Total)
}

// ──────────────────────────────────────────────────────────────────────────────
// Empleados
// ──────────────────────────────────────────────────────────────────────────────

func TestEmpleado_NormalizaYDesactiva(t *testing.T) {
	employees := newMemEmployees()
	uc := usecase.NewEmployeeUseCase(employees, newMemCategories())
	ctx := context.Background()

	e, err := uc.Create(ctx, operatorA, dto.EmployeeRequest{
		CUIL:     "20123456786",
		Surname:  "  PÉREZ   gómez ",
		Name:     "juan  carlos",
		HireDate: "2023-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "Pérez Gómez", e.Surname)
	assert.Equal(t, "Juan Carlos", e.Name)
	assert.Equal(t, "Pérez Gómez, Juan Carlos", e.FullName)
	assert.Equal(t, "20-12345678-6", e.CUIL)
	assert.Equal(t, "2023-03-01", e.HireDate)

	_, err = uc.Create(ctx, operatorA, dto.EmployeeRequest{CUIL: "20-12345678-6", Surname: "Otro", HireDate: "2023-01-01"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	require.NoError(t, uc.Deactivate(ctx, operatorA, e.ID))

	list, err := uc.List(ctx, operatorA, false, dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Items)

	list, err = uc.List(ctx, operatorA, true, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.False(t, list.Items[0].Active)

	// editar no reactiva
	upd, err := uc.Update(ctx, operatorA, e.ID, dto.EmployeeRequest{CUIL: e.CUIL, Surname: "Pérez", HireDate: "2023-03-01"})
	require.NoError(t, err)
	assert.False(t, upd.Active)
}

func TestEmpleado_Validaciones(t *testing.T) {
	uc := usecase.NewEmployeeUseCase(newMemEmployees(), newMemCategories())
	casos := map[string]dto.EmployeeRequest{
		"sin apellido":  {CUIL: "20123456786", HireDate: "2023-01-01"},
		"sin cuil":      {Surname: "Pérez", HireDate: "2023-01-01"},
		"cuil inválido": {CUIL: "20123456785", Surname: "Pérez", HireDate: "2023-01-01"},
		"fecha inválida":{CUIL: "20123456786", Surname: "Pérez", HireDate: "01/03/2023"},
	}
	for name, req := range casos {
		_, err := uc.Create(context.Background(), adminA, req)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, name)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Facturación
// ──────────────────────────────────────────────────────────────────────────────

func TestFacturas_RegistroYResumen(t *testing.T) {
	providers := newMemProviders()
	prov, err := usecase.NewProviderUseCase(providers).Create(context.Background(), adminA, dto.CounterpartyRequest{Name: "Aceros SA"})
	require.NoError(t, err)

	uc := usecase.NewInvoiceUseCase(&memInvoices{}, providers)
	ctx := context.Background()

	alta := func(date, number, amount, currency string) error {
		_, err := uc.Create(ctx, adminA, dto.InvoiceRequest{
			Date: date, ProviderID: prov.ID, InvoiceNumber: number,
			Amount: decimal.RequireFromString(amount), Currency: currency,
		})
		return err
	}
	require.NoError(t, alta("2023-05-10", "A-0001", "1000.50", ""))
	require.NoError(t, alta("2023-11-02", "A-0002", "499.50", "ars"))
	require.NoError(t, alta("2024-01-15", "A-0003", "300", "USD"))
	assert.ErrorIs(t, alta("2024-02-01", "A-0003", "10", ""), domain.ErrDuplicate)
	assert.ErrorIs(t, alta("2024-02-01", "A-0004", "0", ""), domain.ErrInvalidInput)

	list, err := uc.List(ctx, adminA, dto.InvoiceFilterRequest{Year: 2023})
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)
	assert.Equal(t, "Aceros SA", list.Items[0].ProviderName)

	summary, err := uc.SummaryByYear(ctx, adminA)
	require.NoError(t, err)
	require.Len(t, summary, 2)
	assert.Equal(t, 2023, summary[0].Year)
	assert.Equal(t, int64(2), summary[0].Count)
	assert.True(t, summary[0].Total.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, "USD", summary[1].Currency)
}

func TestFacturas_ProveedorInexistente(t *testing.T) {
	uc := usecase.NewInvoiceUseCase(&memInvoices{}, newMemProviders())
	_, err := uc.Create(context.Background(), adminA, dto.InvoiceRequest{
		Date: "2024-01-01", ProviderID: 42, InvoiceNumber: "B-1", Amount: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
