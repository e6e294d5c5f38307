package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/wanifuchi/ocr-app/internal/config"
	"github.com/wanifuchi/ocr-app/internal/models"
	"github.com/wanifuchi/ocr-app/internal/providers"
)

var (
	ErrNotAnImage   = errors.New("uploaded file must be an image")
	ErrFileTooLarge = errors.New("file too large, maximum size is 10MB")
)

// Upload is one inbound OCR request.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Pipeline normalizes an uploaded image and dispatches it across the
// configured provider chain, falling back to a demo result when no provider
// produces text. Apart from the two validation errors it always answers.
type Pipeline struct {
	cfg       *config.Config
	optimizer *ImageOptimizer
	providers []providers.Provider
}

func NewPipeline(cfg *config.Config, chain []providers.Provider) *Pipeline {
	return &Pipeline{
		cfg:       cfg,
		optimizer: NewImageOptimizer(cfg.MaxImageDimension, cfg.JPEGQuality),
		providers: chain,
	}
}

// Process runs the full pipeline for one upload.
func (p *Pipeline) Process(ctx context.Context, up Upload) (resp *models.OCRResponse, err error) {
	if !strings.HasPrefix(up.ContentType, "image/") {
		return nil, ErrNotAnImage
	}
	if int64(len(up.Data)) > p.cfg.MaxFileSize {
		return nil, ErrFileTooLarge
	}

	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			log.Printf("Error: OCR pipeline fault for %s: %v", up.Filename, r)
			resp = p.errorResult(up, fmt.Errorf("%v", r), start)
			err = nil
		}
	}()

	log.Printf("Processing %s (%d bytes)", up.Filename, len(up.Data))
	optimized := p.optimizer.Optimize(up.Data)

	configured := p.configuredProviders()
	if len(configured) == 0 {
		log.Println("No OCR provider configured - returning demo result")
		return p.demoResult(up, optimized, start), nil
	}

	for _, prov := range configured {
		text, ok := p.attempt(ctx, prov, optimized)
		if !ok {
			continue
		}
		confidence := prov.Confidence()
		name := prov.Name()
		log.Printf("OCR succeeded via %s: %d characters", name, len(text))
		return &models.OCRResponse{
			Text:           text,
			Confidence:     &confidence,
			ProcessingTime: time.Since(start).Seconds(),
			Model:          models.ModelName,
			ModelUsed:      &name,
		}, nil
	}

	log.Println("Warning: all OCR providers failed - returning demo result")
	return p.demoResult(up, optimized, start), nil
}

// attempt invokes one provider under its own timeout. Any fault or empty
// output means "try the next provider".
func (p *Pipeline) attempt(ctx context.Context, prov providers.Provider, image []byte) (string, bool) {
	callCtx, cancel := context.WithTimeout(ctx, p.cfg.ProviderTimeout)
	defer cancel()

	raw, err := prov.Recognize(callCtx, image)
	if err != nil {
		log.Printf("Warning: provider %s failed: %v", prov.Name(), err)
		return "", false
	}

	text := providers.Normalize(raw)
	if text == "" {
		log.Printf("Warning: provider %s returned empty text", prov.Name())
		return "", false
	}
	return text, true
}

func (p *Pipeline) configuredProviders() []providers.Provider {
	out := make([]providers.Provider, 0, len(p.providers))
	for _, prov := range p.providers {
		if prov.Configured() {
			out = append(out, prov)
		}
	}
	return out
}

func (p *Pipeline) demoResult(up Upload, optimized []byte, start time.Time) *models.OCRResponse {
	text := fmt.Sprintf(`[Demo Mode] dots.ocr processing test

Uploaded file: %s
File size: %d bytes
Optimized size: %d bytes
Processing time: %.2f seconds

To enable live OCR:
1. Deploy the dots.ocr app to a HuggingFace Space
2. Set HUGGINGFACE_SPACE_URL or HUGGINGFACE_SPACE_NAME
3. The gateway switches to live recognition automatically

System status: operational`,
		up.Filename, len(up.Data), len(optimized), time.Since(start).Seconds())

	confidence := 1.0
	modelUsed := models.ProviderDemoMode
	return &models.OCRResponse{
		Text:           text,
		Confidence:     &confidence,
		ProcessingTime: time.Since(start).Seconds(),
		Model:          models.ModelName,
		ModelUsed:      &modelUsed,
	}
}

func (p *Pipeline) errorResult(up Upload, fault error, start time.Time) *models.OCRResponse {
	text := fmt.Sprintf(`[Error] OCR processing failed

Error detail: %v
File name: %s

Configuration status:
- HUGGINGFACE_SPACE_URL: %s
- HUGGINGFACE_SPACE_NAME: %s
- OPENAI_API_KEY: %s
- REPLICATE_API_TOKEN: %s

Check the server logs for details`,
		fault, up.Filename,
		setOrNot(p.cfg.HuggingFaceSpaceURL),
		setOrNot(p.cfg.HuggingFaceSpaceName),
		setOrNot(p.cfg.OpenAIAPIKey),
		setOrNot(p.cfg.ReplicateAPIToken))

	confidence := 0.0
	modelUsed := models.ProviderErrorFallback
	return &models.OCRResponse{
		Text:           text,
		Confidence:     &confidence,
		ProcessingTime: time.Since(start).Seconds(),
		Model:          models.ModelName,
		ModelUsed:      &modelUsed,
	}
}

func setOrNot(v string) string {
	if v != "" {
		return "set"
	}
	return "not set"
}
