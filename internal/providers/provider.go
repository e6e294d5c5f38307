package providers

import (
	"context"
	"log"

	"github.com/wanifuchi/ocr-app/internal/config"
)

// Provider names as used in OCR_PROVIDER_ORDER and in the model_used field.
const (
	NameHuggingFaceSpace = "huggingface_space"
	NameOpenAIVision     = "openai_vision"
	NameReplicate        = "replicate"
	NameTesseractLocal   = "tesseract_local"
)

// Provider is one way of invoking a remote OCR capability. Recognize returns
// the provider's raw output, which the caller reduces to text via Normalize.
type Provider interface {
	Name() string
	Configured() bool
	Confidence() float64
	Recognize(ctx context.Context, image []byte) (any, error)
}

// FromConfig builds the provider chain in the configured priority order.
// Unknown names are logged and skipped.
func FromConfig(cfg *config.Config) []Provider {
	registry := map[string]Provider{
		NameHuggingFaceSpace: NewSpaceProvider(cfg.HuggingFaceSpaceURL, cfg.HuggingFaceSpaceName, cfg.HuggingFaceToken, cfg.ProviderTimeout),
		NameOpenAIVision:     NewVisionProvider(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel),
		NameReplicate:        NewReplicateProvider(cfg.ReplicateAPIToken, cfg.ReplicateModel, cfg.ProviderTimeout),
		NameTesseractLocal:   NewTesseractProvider(cfg.EnableTesseract),
	}

	chain := make([]Provider, 0, len(cfg.ProviderOrder))
	for _, name := range cfg.ProviderOrder {
		p, ok := registry[name]
		if !ok {
			log.Printf("Warning: unknown OCR provider %q in OCR_PROVIDER_ORDER, skipping", name)
			continue
		}
		chain = append(chain, p)
	}
	return chain
}
