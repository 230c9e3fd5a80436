package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/application/inventory"
	apppayroll "github.com/jhoicas/Gestion-api/internal/application/payroll"
	"github.com/jhoicas/Gestion-api/internal/application/tenancy"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
	"github.com/jhoicas/Gestion-api/internal/domain/payroll"
	infrapdf "github.com/jhoicas/Gestion-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Gestion-api/internal/interfaces/http"
	"github.com/jhoicas/Gestion-api/pkg/config"
	"github.com/jhoicas/Gestion-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("registry_schema", cfg.Tenant.RegistrySchema).
		Bool("allow_negative_stock", cfg.Inventory.AllowNegativeStock).
		Msg("iniciando aplicación")
	zl := log.Zerolog()

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Registro de tenants y operadores (schema público)
	tenantRepo := postgres.NewTenantRepository(pool, cfg.Tenant.RegistrySchema)
	userRepo := postgres.NewUserRepository(pool, cfg.Tenant.RegistrySchema)

	// Tablas de negocio (schema de cada tenant)
	categoryRepo := postgres.NewCategoryRepository(pool)
	providerRepo := postgres.NewProviderRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	payrollRepo := postgres.NewPayrollRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	resolver := tenancy.NewResolver(tenantRepo, userRepo, zl)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	movementUC := inventory.NewMovementUseCase(txRunner, movementRepo, stockRepo, cfg.Inventory.AllowNegativeStock)
	payrollUC := apppayroll.NewUseCase(payrollRepo, employeeRepo, tenantRepo, infrapdf.NewMarotoPayslipGenerator(),
		payroll.Percentages{
			Pension:         cfg.Payroll.PensionPercent,
			LawX:            cfg.Payroll.LawXPercent,
			HealthInsurance: cfg.Payroll.HealthInsurancePercent,
			Insurance:       cfg.Payroll.InsurancePercent,
			SolidarityFund:  cfg.Payroll.SolidarityFundPercent,
		})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(zl))

	// Swagger UI en local: http://localhost:<port>/docs (solo si se generó docs/swagger.json)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Gestión PyME API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		Resolver:   resolver,
		TenantUC:   usecase.NewTenantUseCase(tenantRepo),
		OperatorUC: usecase.NewOperatorUseCase(userRepo),
		CategoryUC: usecase.NewCategoryUseCase(categoryRepo),
		ProviderUC: usecase.NewProviderUseCase(providerRepo),
		ClientUC:   usecase.NewClientUseCase(clientRepo),
		ProductUC:  usecase.NewProductUseCase(productRepo, categoryRepo),
		MovementUC: movementUC,
		EmployeeUC: usecase.NewEmployeeUseCase(employeeRepo, categoryRepo),
		PayrollUC:  payrollUC,
		InvoiceUC:  usecase.NewInvoiceUseCase(invoiceRepo, providerRepo),
		JWTSecret:  cfg.JWT.Secret,
		Log:        zl,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
