package main

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/wanifuchi/ocr-app/internal/config"
	"github.com/wanifuchi/ocr-app/internal/handlers"
	"github.com/wanifuchi/ocr-app/internal/providers"
	"github.com/wanifuchi/ocr-app/internal/services"
)

func main() {
	// Load .env file if it exists
	godotenv.Load()

	// Load configuration
	cfg := config.Load()

	if cfg.AnyProviderConfigured() {
		log.Printf("OCR provider order: %s", strings.Join(cfg.ProviderOrder, ", "))
	} else {
		log.Println("Warning: no OCR provider configured - running in demo mode")
	}

	// Build the provider chain and pipeline
	chain := providers.FromConfig(cfg)
	pipeline := services.NewPipeline(cfg, chain)

	// Initialize Fiber app. The body limit sits above the 10MB upload cap so
	// oversized files reach the pipeline's own validation instead of a 413.
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
		BodyLimit:    16 * 1024 * 1024,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	// Create handler with dependencies
	h := handlers.New(cfg, pipeline)

	// Health endpoints
	app.Get("/", h.Root)
	app.Get("/health", h.Health)

	// API routes
	api := app.Group("/api/v1")
	api.Post("/ocr/process", h.ProcessOCR)
	api.Get("/status", h.GetStatus)

	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
