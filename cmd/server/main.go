package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"bankcore/internal/adapters/http/middleware"
	"bankcore/internal/adapters/http/routes"
	"bankcore/internal/adapters/persistence/models"
	"bankcore/internal/config"

	"github.com/gofiber/fiber/v2"
)

// @title bankcore API
// @version 1.0
// @description Banking onboarding and loan decision API

// @host localhost:3000
// @BasePath /api/v1
// @schemes http

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables and unique indexes if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}
	log.Println("Database migration completed")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "bankcore API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db for dependency injection)
	routes.Setup(app, db)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server stopped gracefully")
}
