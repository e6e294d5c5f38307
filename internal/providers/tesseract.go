//go:build !windows

package providers

import (
	"context"
	"fmt"
	"os"

	"github.com/otiai10/gosseract/v2"
)

// TesseractProvider runs OCR locally through tesseract. It sits at the tail
// of the fallback chain for deployments without any remote credential.
type TesseractProvider struct {
	enabled bool
}

func NewTesseractProvider(enabled bool) *TesseractProvider {
	return &TesseractProvider{enabled: enabled}
}

func (p *TesseractProvider) Name() string { return NameTesseractLocal }

func (p *TesseractProvider) Configured() bool { return p.enabled }

func (p *TesseractProvider) Confidence() float64 { return 0.80 }

func (p *TesseractProvider) Recognize(ctx context.Context, image []byte) (any, error) {
	if !p.enabled {
		return nil, ErrNotConfigured
	}

	// gosseract reads from a file path, so stage the image in a temp file.
	tmpFile, err := os.CreateTemp("", "ocr-*.jpg")
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(image); err != nil {
		tmpFile.Close()
		return nil, fmt.Errorf("writing temp file: %w", err)
	}
	tmpFile.Close()

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage("eng"); err != nil {
		return nil, fmt.Errorf("setting language: %w", err)
	}
	if err := client.SetImage(tmpFile.Name()); err != nil {
		return nil, fmt.Errorf("setting image: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("extracting text: %w", err)
	}
	return text, nil
}
