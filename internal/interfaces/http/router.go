package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/application/inventory"
	"github.com/jhoicas/Gestion-api/internal/application/payroll"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
	domaininv "github.com/jhoicas/Gestion-api/internal/domain/inventory"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	Resolver   tenantResolver
	TenantUC   *usecase.TenantUseCase
	OperatorUC *usecase.OperatorUseCase
	CategoryUC *usecase.CategoryUseCase
	ProviderUC *usecase.ProviderUseCase
	ClientUC   *usecase.ClientUseCase
	ProductUC  *usecase.ProductUseCase
	MovementUC *inventory.MovementUseCase
	EmployeeUC *usecase.EmployeeUseCase
	PayrollUC  *payroll.UseCase
	InvoiceUC  *usecase.InvoiceUseCase
	JWTSecret  string
	Log        zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, log)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas: Bearer Token + resolución de tenant
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), TenantMiddleware(deps.Resolver, log))
	adminOnly := RequireRole(tenant.RoleAdmin)

	// Tenant y operadores
	tenantHandler := NewTenantHandler(deps.TenantUC, deps.OperatorUC, log)
	protected.Get("/tenant", tenantHandler.Get)
	protected.Put("/tenant", adminOnly, tenantHandler.Update)
	operators := protected.Group("/operators", adminOnly)
	operators.Get("/", tenantHandler.ListOperators)
	operators.Post("/", tenantHandler.CreateOperator)
	operators.Delete("/:id", tenantHandler.DeleteOperator)

	// Categorías
	categoryHandler := NewCategoryHandler(deps.CategoryUC, log)
	categories := protected.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Delete("/:id", categoryHandler.Delete)

	// Proveedores y clientes
	registerCounterparty(protected.Group("/providers"), NewCounterpartyHandler(deps.ProviderUC, log))
	registerCounterparty(protected.Group("/clients"), NewCounterpartyHandler(deps.ClientUC, log))

	// Productos
	productHandler := NewProductHandler(deps.ProductUC, deps.MovementUC, log)
	products := protected.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/stock-audit", productHandler.StockAudit)

	// Compras y ventas
	registerMovements(protected.Group("/purchases"), NewInventoryHandler(deps.MovementUC, domaininv.KindPurchase, log))
	registerMovements(protected.Group("/sales"), NewInventoryHandler(deps.MovementUC, domaininv.KindSale, log))

	// Empleados
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, log)
	employees := protected.Group("/employees")
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Deactivate)

	// Haberes
	payrollHandler := NewPayrollHandler(deps.PayrollUC, log)
	payrollGroup := protected.Group("/payroll")
	payrollGroup.Post("/preview", payrollHandler.Preview)
	payrollGroup.Post("/", payrollHandler.Create)
	payrollGroup.Get("/", payrollHandler.List)
	payrollGroup.Get("/:id", payrollHandler.GetByID)
	payrollGroup.Put("/:id", payrollHandler.Update)
	payrollGroup.Delete("/:id", payrollHandler.Delete)
	payrollGroup.Get("/:id/pdf", payrollHandler.Payslip)

	// Facturación
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, log)
	invoices := protected.Group("/invoices")
	invoices.Get("/summary", invoiceHandler.Summary)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Delete("/:id", invoiceHandler.Delete)
}

func registerCounterparty(g fiber.Router, h *CounterpartyHandler) {
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

func registerMovements(g fiber.Router, h *InventoryHandler) {
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
