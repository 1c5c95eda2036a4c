package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ignaciodev/inventario-api/internal/application/analytics"
	"github.com/ignaciodev/inventario-api/internal/application/auth"
	"github.com/ignaciodev/inventario-api/internal/application/inventory"
	"github.com/ignaciodev/inventario-api/internal/application/usecase"
	"github.com/ignaciodev/inventario-api/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CompanyUC     *usecase.CompanyUseCase
	CustomerUC    *usecase.CustomerUseCase
	ProductTypeUC *usecase.ProductTypeUseCase
	ProductUC     *usecase.ProductUseCase
	ApplyMovement *inventory.ApplyMovementUseCase
	ListMovements *inventory.ListMovementsUseCase
	ReportsUC     *inventory.ReportsUseCase
	DashboardUC   *analytics.DashboardUseCase
	PDFGenerator  *pdf.SalesReportGenerator
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público, user-info protegido)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/user-info", AuthMiddleware(deps.JWTSecret), authHandler.UserInfo)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Empresas
	companies := protected.Group("/empresas")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Delete("/:id", companyHandler.Delete)

	// Clientes
	customers := protected.Group("/clientes")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Delete("/:id", customerHandler.Delete)

	// Tipos de producto (catálogo global)
	tipos := protected.Group("/tipos")
	typeHandler := NewProductTypeHandler(deps.ProductTypeUC)
	tipos.Post("/", typeHandler.Create)
	tipos.Get("/", typeHandler.List)
	tipos.Delete("/:id", typeHandler.Delete)

	// Productos
	products := protected.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Movimientos de inventario
	movements := protected.Group("/movimientos")
	movementHandler := NewMovementHandler(deps.ApplyMovement, deps.ListMovements)
	movements.Post("/", movementHandler.Create)
	movements.Get("/", movementHandler.List)

	// Reportes
	reports := protected.Group("/reportes")
	reportHandler := NewReportHandler(deps.ReportsUC, deps.AuthUC, deps.PDFGenerator)
	reports.Get("/ventas", reportHandler.SalesByProduct)
	reports.Get("/resumen", reportHandler.SalesSummary)
	reports.Get("/ventas/pdf", reportHandler.SalesPDF)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.GetStats)
}
