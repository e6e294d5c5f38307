package handlers

import (
	"errors"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/wanifuchi/ocr-app/internal/models"
	"github.com/wanifuchi/ocr-app/internal/services"
)

// ProcessOCR handles the OCR upload endpoint
func (h *Handler) ProcessOCR(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		// Some clients send the upload under "image"
		file, err = c.FormFile("image")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "image file is required")
	}

	src, err := file.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to read file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to read file")
	}

	resp, err := h.pipeline.Process(c.Context(), services.Upload{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		if errors.Is(err, services.ErrNotAnImage) || errors.Is(err, services.ErrFileTooLarge) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		log.Printf("Error: OCR processing failed: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "OCR processing failed: "+err.Error())
	}

	return c.JSON(resp)
}

// GetStatus handles the status endpoint
func (h *Handler) GetStatus(c *fiber.Ctx) error {
	return c.JSON(models.StatusResponse{
		APIStatus:                  "running",
		OCRProvider:                "HuggingFace Space + dots.ocr",
		HuggingFaceSpaceConfigured: h.cfg.SpaceConfigured(),
		HuggingFaceSpaceURL:        nilIfEmpty(h.cfg.HuggingFaceSpaceURL),
		HuggingFaceSpaceName:       nilIfEmpty(h.cfg.HuggingFaceSpaceName),
		OpenAIVisionConfigured:     h.cfg.OpenAIAPIKey != "",
		ReplicateConfigured:        h.cfg.ReplicateAPIToken != "",
		TesseractEnabled:           h.cfg.EnableTesseract,
		ProviderOrder:              h.cfg.ProviderOrder,
		MemoryLimit:                "512MB (Railway $5 plan)",
		SupportedFormats:           models.SupportedFormats,
		MaxFileSize:                "10MB",
		Model:                      models.ModelName,
		Features: map[string]any{
			"multilingual":     "80+ languages",
			"layout_detection": true,
			"high_accuracy":    "95%+",
			"gpu_optimized":    true,
		},
	})
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
