package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-inventory-kardex/internal/handler"
	"go-inventory-kardex/internal/repository"
	"go-inventory-kardex/internal/service"
	"go-inventory-kardex/internal/ws"
	"go-inventory-kardex/pkg/config"
	"go-inventory-kardex/pkg/database"
	"go-inventory-kardex/pkg/jwt"
	"go-inventory-kardex/pkg/seed"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// 1. Load Env
	cfg := config.Load()

	// 2. Setup Storage
	var repo repository.CollectionRepository
	switch cfg.Store {
	case config.StoreMemory:
		log.Println("Warning: STORE=memory, data is lost on exit")
		repo = repository.NewMemoryCollectionRepo()
	default:
		db, err := database.ConnectDB(cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		repo = repository.NewCollectionRepo(db)
	}

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Load ledger, seed an empty one
	ledger := service.NewLedgerService(repo, wsHub)
	if err := ledger.Load(); err != nil {
		log.Fatal(err)
	}
	if names, err := repo.Names(); err != nil {
		log.Printf("Warning: failed to list stored collections: %v", err)
	} else {
		log.Printf("Ledger loaded, stored collections: %v", names)
	}
	if cfg.SeedFile != "" && len(ledger.Categories()) == 0 {
		if err := seed.ImportFile(ledger, cfg.SeedFile); err != nil {
			log.Printf("Warning: failed to seed from %s: %v", cfg.SeedFile, err)
		} else {
			log.Printf("Ledger seeded from %s", cfg.SeedFile)
		}
	}

	// 5. Dependency Injection (Wiring Layers)
	services := handler.Services{
		Ledger:    ledger,
		Valuation: service.NewValuationService(ledger),
		Dashboard: service.NewDashboardService(ledger),
	}
	if cfg.AuthEnabled {
		signer, err := jwt.NewSigner(cfg.JWTSecret, 24*time.Hour)
		if err != nil {
			log.Fatal("Auth is enabled: ", err)
		}
		services.Validator = signer
	} else {
		log.Println("Warning: AUTH_ENABLED=false, API is open")
	}

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Inventory Kardex v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	handler.RegisterRoutes(app, services)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(wsHub.Serve))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
