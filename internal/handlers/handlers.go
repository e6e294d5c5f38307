package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wanifuchi/ocr-app/internal/config"
	"github.com/wanifuchi/ocr-app/internal/services"
)

// Handler holds all handler dependencies
type Handler struct {
	cfg      *config.Config
	pipeline *services.Pipeline
}

// New creates a new Handler instance
func New(cfg *config.Config, pipeline *services.Pipeline) *Handler {
	return &Handler{
		cfg:      cfg,
		pipeline: pipeline,
	}
}

// ErrorHandler is a custom error handler for Fiber
func ErrorHandler(c *fiber.Ctx, err error) error {
	// Default to 500
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	// Check if it's a Fiber error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}
