package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/wanifuchi/ocr-app/internal/config"
	"github.com/wanifuchi/ocr-app/internal/models"
	"github.com/wanifuchi/ocr-app/internal/providers"
)

type fakeProvider struct {
	name       string
	configured bool
	raw        any
	err        error
	calls      int
}

func (f *fakeProvider) Name() string        { return f.name }
func (f *fakeProvider) Configured() bool    { return f.configured }
func (f *fakeProvider) Confidence() float64 { return 0.9 }

func (f *fakeProvider) Recognize(ctx context.Context, image []byte) (any, error) {
	f.calls++
	return f.raw, f.err
}

func testConfig() *config.Config {
	return &config.Config{
		MaxFileSize:       10 * 1024 * 1024,
		MaxImageDimension: 1920,
		JPEGQuality:       85,
		ProviderTimeout:   time.Second,
	}
}

func testUpload() Upload {
	return Upload{
		Filename:    "scan.png",
		ContentType: "image/png",
		Data:        []byte("not a real image, optimizer passes it through"),
	}
}

func TestProcessRespectsProviderPriority(t *testing.T) {
	failing := &fakeProvider{name: "a", configured: true, err: errors.New("unreachable")}
	succeeding := &fakeProvider{name: "b", configured: true, raw: "hello"}
	unreached := &fakeProvider{name: "c", configured: true, raw: "never"}

	p := NewPipeline(testConfig(), []providers.Provider{failing, succeeding, unreached})

	resp, err := p.Process(context.Background(), testUpload())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if resp.Text != "hello" {
		t.Errorf("text: got %q, want %q", resp.Text, "hello")
	}
	if resp.ModelUsed == nil || *resp.ModelUsed != "b" {
		t.Errorf("model_used: got %v, want %q", resp.ModelUsed, "b")
	}
	if resp.Confidence == nil || *resp.Confidence != 0.9 {
		t.Errorf("confidence: got %v, want 0.9", resp.Confidence)
	}
	if unreached.calls != 0 {
		t.Errorf("provider c: got %d calls, want 0", unreached.calls)
	}
}

func TestProcessSkipsEmptyText(t *testing.T) {
	empty := &fakeProvider{name: "a", configured: true, raw: "   \n"}
	succeeding := &fakeProvider{name: "b", configured: true, raw: "text"}

	p := NewPipeline(testConfig(), []providers.Provider{empty, succeeding})

	resp, err := p.Process(context.Background(), testUpload())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if resp.ModelUsed == nil || *resp.ModelUsed != "b" {
		t.Errorf("model_used: got %v, want %q", resp.ModelUsed, "b")
	}
}

func TestProcessSkipsUnconfiguredProviders(t *testing.T) {
	unconfigured := &fakeProvider{name: "a", configured: false, raw: "never"}
	succeeding := &fakeProvider{name: "b", configured: true, raw: "text"}

	p := NewPipeline(testConfig(), []providers.Provider{unconfigured, succeeding})

	resp, err := p.Process(context.Background(), testUpload())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if unconfigured.calls != 0 {
		t.Errorf("unconfigured provider: got %d calls, want 0", unconfigured.calls)
	}
	if resp.ModelUsed == nil || *resp.ModelUsed != "b" {
		t.Errorf("model_used: got %v, want %q", resp.ModelUsed, "b")
	}
}

func TestProcessDemoModeWhenNoProviders(t *testing.T) {
	p := NewPipeline(testConfig(), nil)

	resp, err := p.Process(context.Background(), testUpload())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if resp.ModelUsed == nil || *resp.ModelUsed != models.ProviderDemoMode {
		t.Errorf("model_used: got %v, want %q", resp.ModelUsed, models.ProviderDemoMode)
	}
	if resp.Confidence == nil || *resp.Confidence != 1.0 {
		t.Errorf("confidence: got %v, want 1.0", resp.Confidence)
	}
	if resp.Text == "" {
		t.Error("text: got empty, want demo template")
	}
	if resp.Model != models.ModelName {
		t.Errorf("model: got %q, want %q", resp.Model, models.ModelName)
	}
}

func TestProcessDemoModeWhenAllProvidersFail(t *testing.T) {
	a := &fakeProvider{name: "a", configured: true, err: errors.New("down")}
	b := &fakeProvider{name: "b", configured: true, err: errors.New("also down")}

	p := NewPipeline(testConfig(), []providers.Provider{a, b})

	resp, err := p.Process(context.Background(), testUpload())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if resp.ModelUsed == nil || *resp.ModelUsed != models.ProviderDemoMode {
		t.Errorf("model_used: got %v, want %q", resp.ModelUsed, models.ProviderDemoMode)
	}
	if resp.Confidence == nil || *resp.Confidence != 1.0 {
		t.Errorf("confidence: got %v, want 1.0", resp.Confidence)
	}
	if a.calls != 1 || b.calls != 1 {
		t.Errorf("calls: got a=%d b=%d, want both 1", a.calls, b.calls)
	}
}

func TestProcessRejectsNonImageContentType(t *testing.T) {
	p := NewPipeline(testConfig(), nil)

	up := testUpload()
	up.ContentType = "text/plain"

	if _, err := p.Process(context.Background(), up); !errors.Is(err, ErrNotAnImage) {
		t.Errorf("error: got %v, want ErrNotAnImage", err)
	}
}

func TestProcessRejectsOversizedFile(t *testing.T) {
	p := NewPipeline(testConfig(), nil)

	up := testUpload()
	up.Data = make([]byte, 10*1024*1024+1)

	if _, err := p.Process(context.Background(), up); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("error: got %v, want ErrFileTooLarge", err)
	}
}

func TestProcessReportsElapsedTime(t *testing.T) {
	p := NewPipeline(testConfig(), nil)

	resp, err := p.Process(context.Background(), testUpload())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if resp.ProcessingTime < 0 {
		t.Errorf("processing_time: got %f, want >= 0", resp.ProcessingTime)
	}
}

type panickingProvider struct{}

func (p *panickingProvider) Name() string        { return "panicky" }
func (p *panickingProvider) Configured() bool    { return true }
func (p *panickingProvider) Confidence() float64 { return 0.9 }
func (p *panickingProvider) Recognize(ctx context.Context, image []byte) (any, error) {
	panic("unexpected fault")
}

func TestProcessRecoversFromPanic(t *testing.T) {
	p := NewPipeline(testConfig(), []providers.Provider{&panickingProvider{}})

	resp, err := p.Process(context.Background(), testUpload())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if resp.ModelUsed == nil || *resp.ModelUsed != models.ProviderErrorFallback {
		t.Errorf("model_used: got %v, want %q", resp.ModelUsed, models.ProviderErrorFallback)
	}
	if resp.Confidence == nil || *resp.Confidence != 0.0 {
		t.Errorf("confidence: got %v, want 0.0", resp.Confidence)
	}
	if resp.Text == "" {
		t.Error("text: got empty, want diagnostic message")
	}
}
