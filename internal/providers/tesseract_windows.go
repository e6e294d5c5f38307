//go:build windows

package providers

import (
	"context"
	"errors"
)

// TesseractProvider is not available on Windows - run in a Docker container.
type TesseractProvider struct{}

func NewTesseractProvider(enabled bool) *TesseractProvider {
	return &TesseractProvider{}
}

func (p *TesseractProvider) Name() string { return NameTesseractLocal }

func (p *TesseractProvider) Configured() bool { return false }

func (p *TesseractProvider) Confidence() float64 { return 0.80 }

func (p *TesseractProvider) Recognize(ctx context.Context, image []byte) (any, error) {
	return nil, errors.New("local tesseract is not available on Windows")
}
