package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/FeriaStock-api/internal/application/analytics"
	"github.com/jhoicas/FeriaStock-api/internal/application/auth"
	appstock "github.com/jhoicas/FeriaStock-api/internal/application/stock"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ItemUC      *appstock.ItemUseCase
	MovementUC  *appstock.RegisterMovementUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público: estado de setup, creación del admin inicial y login)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Get("/setup", authHandler.SetupStatus)
	authGroup.Post("/setup", authHandler.Setup)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Alta de usuarios: solo admin
	protected.Post("/auth/users", RequireAdmin(), authHandler.CreateUser)

	// Catálogo de ítems (protegido)
	items := protected.Group("/stock-items")
	itemHandler := NewStockItemHandler(deps.ItemUC)
	movementHandler := NewMovementHandler(deps.MovementUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/exhibitors", itemHandler.Exhibitors)
	items.Get("/types", itemHandler.ItemTypes)
	items.Get("/:id/movements", movementHandler.History)

	// Movimientos (protegido)
	movements := protected.Group("/movements")
	movements.Post("/", movementHandler.Register)

	// Panel (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
	dashboard.Get("/export", dashboardHandler.Export)
}
