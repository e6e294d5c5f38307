package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/wanifuchi/ocr-app/internal/models"
)

// Root handles the root endpoint
func (h *Handler) Root(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status:    "ok",
		Message:   "OCR API Gateway is running",
		Timestamp: unixSeconds(),
	})
}

// Health handles the health check endpoint
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status:    "healthy",
		Message:   "Service is operational",
		Timestamp: unixSeconds(),
	})
}

func unixSeconds() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}
