package models

// ModelName identifies the upstream OCR model advertised by the gateway.
const ModelName = "dots.ocr (GOT-OCR2_0)"

// Provider identifiers reported in the model_used field.
const (
	ProviderDemoMode      = "demo_mode"
	ProviderErrorFallback = "error_fallback"
)

// SupportedFormats lists the image formats the gateway accepts.
var SupportedFormats = []string{"PNG", "JPEG", "GIF", "BMP", "WebP"}

// OCRResponse is the result returned by the OCR endpoint.
type OCRResponse struct {
	Text           string   `json:"text"`
	Confidence     *float64 `json:"confidence"`
	ProcessingTime float64  `json:"processing_time"`
	Model          string   `json:"model"`
	ModelUsed      *string  `json:"model_used"`
}

// HealthResponse is returned by the root and health endpoints.
type HealthResponse struct {
	Status    string  `json:"status"`
	Message   string  `json:"message"`
	Timestamp float64 `json:"timestamp"`
}

// StatusResponse describes the gateway configuration for the status endpoint.
type StatusResponse struct {
	APIStatus                  string         `json:"api_status"`
	OCRProvider                string         `json:"ocr_provider"`
	HuggingFaceSpaceConfigured bool           `json:"huggingface_space_configured"`
	HuggingFaceSpaceURL        *string        `json:"huggingface_space_url"`
	HuggingFaceSpaceName       *string        `json:"huggingface_space_name"`
	OpenAIVisionConfigured     bool           `json:"openai_vision_configured"`
	ReplicateConfigured        bool           `json:"replicate_configured"`
	TesseractEnabled           bool           `json:"tesseract_enabled"`
	ProviderOrder              []string       `json:"provider_order"`
	MemoryLimit                string         `json:"memory_limit"`
	SupportedFormats           []string       `json:"supported_formats"`
	MaxFileSize                string         `json:"max_file_size"`
	Model                      string         `json:"model"`
	Features                   map[string]any `json:"features"`
}
