package handler

import (
	"go-inventory-kardex/internal/middleware"
	"go-inventory-kardex/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Services groups what the HTTP layer needs. A nil Validator turns
// authentication off.
type Services struct {
	Ledger    service.LedgerService
	Valuation service.ValuationService
	Dashboard service.DashboardService
	Validator middleware.TokenValidator
}

// RegisterRoutes mounts the REST API under /api/v1
func RegisterRoutes(app *fiber.App, s Services) {
	categoryHandler := NewCategoryHandler(s.Ledger)
	invHandler := NewInventoryHandler(s.Ledger)
	reportHandler := NewReportHandler(s.Ledger, s.Valuation)
	dashHandler := NewDashboardHandler(s.Dashboard)
	snapshotHandler := NewSnapshotHandler(s.Ledger)
	authHandler := NewAuthHandler(s.Validator)

	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	api.Post("/auth/validate-token", authHandler.ValidateToken)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(s.Validator))

	// Dashboard Routes
	protected.Get("/dashboard/stats", dashHandler.GetDashboardStats)
	protected.Get("/dashboard/stock-movement", dashHandler.GetStockMovement)

	// Category Routes
	protected.Get("/categories", categoryHandler.GetCategories)
	protected.Post("/categories", categoryHandler.CreateCategory)
	protected.Put("/categories/:id", categoryHandler.UpdateCategory)
	protected.Delete("/categories/:id", categoryHandler.DeleteCategory)
	protected.Get("/categories/:id/stock", categoryHandler.GetCategoryStock)

	// Product Routes (low-stock before :id)
	protected.Get("/products", invHandler.GetProducts)
	protected.Get("/products/low-stock", invHandler.GetLowStockProducts)
	protected.Post("/products", invHandler.CreateProduct)
	protected.Put("/products/:id", invHandler.UpdateProduct)
	protected.Delete("/products/:id", invHandler.DeleteProduct)
	protected.Get("/products/:id/stock", invHandler.GetProductStock)
	protected.Get("/products/:id/transactions", reportHandler.GetProductTransactions)
	protected.Get("/products/:id/valuation", reportHandler.GetValuation)

	// Transaction Routes
	protected.Get("/transactions", invHandler.GetTransactions)
	protected.Get("/transactions/:id", invHandler.GetTransaction)
	protected.Post("/transactions", invHandler.CreateTransaction)

	// Snapshot Routes
	protected.Get("/snapshot", snapshotHandler.Export)
	protected.Post("/snapshot", snapshotHandler.Import)
}
