package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultProviderOrder is the fallback priority used when OCR_PROVIDER_ORDER
// is not set.
var DefaultProviderOrder = []string{
	"huggingface_space",
	"openai_vision",
	"replicate",
	"tesseract_local",
}

type Config struct {
	// Server
	Port           string
	AllowedOrigins string

	// HuggingFace Space (Gradio API)
	HuggingFaceSpaceURL  string
	HuggingFaceSpaceName string
	HuggingFaceToken     string

	// OpenAI-compatible vision endpoint
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	// Replicate model hosting
	ReplicateAPIToken string
	ReplicateModel    string

	// Local tesseract fallback
	EnableTesseract bool

	// OCR pipeline
	ProviderOrder     []string
	ProviderTimeout   time.Duration
	MaxFileSize       int64
	MaxImageDimension int
	JPEGQuality       int

	// Environment
	Environment string
}

func Load() *Config {
	return &Config{
		Port:                 getEnv("PORT", "8080"),
		AllowedOrigins:       getEnv("ALLOWED_ORIGINS", "*"),
		HuggingFaceSpaceURL:  getEnv("HUGGINGFACE_SPACE_URL", ""),
		HuggingFaceSpaceName: getEnv("HUGGINGFACE_SPACE_NAME", ""),
		HuggingFaceToken:     getEnv("HUGGINGFACE_TOKEN", ""),
		OpenAIAPIKey:         getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:        getEnv("OPENAI_BASE_URL", ""),
		OpenAIModel:          getEnv("OPENAI_VISION_MODEL", "gpt-4o-mini"),
		ReplicateAPIToken:    getEnv("REPLICATE_API_TOKEN", ""),
		ReplicateModel:       getEnv("REPLICATE_MODEL", ""),
		EnableTesseract:      getBoolEnv("OCR_ENABLE_TESSERACT", false),
		ProviderOrder:        getListEnv("OCR_PROVIDER_ORDER", DefaultProviderOrder),
		ProviderTimeout:      getDurationEnv("OCR_PROVIDER_TIMEOUT_SECONDS", 60) * time.Second,
		MaxFileSize:          10 * 1024 * 1024,
		MaxImageDimension:    1920,
		JPEGQuality:          85,
		Environment:          getEnv("ENVIRONMENT", "development"),
	}
}

// SpaceConfigured reports whether the HuggingFace Space integration has
// enough configuration to be attempted.
func (c *Config) SpaceConfigured() bool {
	return c.HuggingFaceSpaceURL != "" || c.HuggingFaceSpaceName != ""
}

// AnyProviderConfigured reports whether at least one upstream OCR provider
// can be invoked. When false the gateway serves demo-mode results.
func (c *Config) AnyProviderConfigured() bool {
	return c.SpaceConfigured() ||
		c.OpenAIAPIKey != "" ||
		c.ReplicateAPIToken != "" ||
		c.EnableTesseract
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return time.Duration(intVal)
		}
	}
	return time.Duration(defaultValue)
}

func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
