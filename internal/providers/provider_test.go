package providers

import (
	"testing"
	"time"

	"github.com/wanifuchi/ocr-app/internal/config"
)

func TestFromConfigRespectsOrder(t *testing.T) {
	cfg := &config.Config{
		ProviderOrder:   []string{"replicate", "huggingface_space", "openai_vision", "tesseract_local"},
		ProviderTimeout: time.Second,
	}

	chain := FromConfig(cfg)
	if len(chain) != 4 {
		t.Fatalf("chain length: got %d, want 4", len(chain))
	}

	want := []string{NameReplicate, NameHuggingFaceSpace, NameOpenAIVision, NameTesseractLocal}
	for i, p := range chain {
		if p.Name() != want[i] {
			t.Errorf("chain[%d]: got %q, want %q", i, p.Name(), want[i])
		}
	}
}

func TestFromConfigSkipsUnknownNames(t *testing.T) {
	cfg := &config.Config{
		ProviderOrder:   []string{"huggingface_space", "no_such_provider"},
		ProviderTimeout: time.Second,
	}

	chain := FromConfig(cfg)
	if len(chain) != 1 {
		t.Fatalf("chain length: got %d, want 1", len(chain))
	}
	if chain[0].Name() != NameHuggingFaceSpace {
		t.Errorf("chain[0]: got %q, want %q", chain[0].Name(), NameHuggingFaceSpace)
	}
}

func TestDefaultOrderCoversRegistry(t *testing.T) {
	cfg := &config.Config{
		ProviderOrder:   config.DefaultProviderOrder,
		ProviderTimeout: time.Second,
	}

	chain := FromConfig(cfg)
	if len(chain) != len(config.DefaultProviderOrder) {
		t.Errorf("chain length: got %d, want %d", len(chain), len(config.DefaultProviderOrder))
	}
	for _, p := range chain {
		if p.Configured() {
			t.Errorf("provider %s: got configured with empty config, want unconfigured", p.Name())
		}
	}
}
