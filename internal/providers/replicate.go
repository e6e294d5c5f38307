package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const replicateAPIURL = "https://api.replicate.com/v1"

// ReplicateProvider runs a hosted OCR model by identifier through
// Replicate's predictions API, waiting synchronously for the output.
type ReplicateProvider struct {
	token      string
	model      string
	baseURL    string
	httpClient *http.Client
}

type replicatePredictionRequest struct {
	Version string         `json:"version"`
	Input   map[string]any `json:"input"`
}

type replicatePredictionResponse struct {
	Status string `json:"status"`
	Output any    `json:"output"`
	Error  string `json:"error"`
}

func NewReplicateProvider(token, model string, timeout time.Duration) *ReplicateProvider {
	return &ReplicateProvider{
		token:   token,
		model:   model,
		baseURL: replicateAPIURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (p *ReplicateProvider) Name() string { return NameReplicate }

func (p *ReplicateProvider) Configured() bool {
	return p.token != "" && p.model != ""
}

func (p *ReplicateProvider) Confidence() float64 { return 0.90 }

func (p *ReplicateProvider) Recognize(ctx context.Context, image []byte) (any, error) {
	if !p.Configured() {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(replicatePredictionRequest{
		Version: p.model,
		Input:   map[string]any{"image": imageDataURI(image)},
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	reqURL := strings.TrimRight(p.baseURL, "/") + "/predictions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.token)
	// Hold the connection until the prediction completes instead of polling.
	req.Header.Set("Prefer", "wait")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("unexpected status %d from replicate api", resp.StatusCode)
	}

	var prediction replicatePredictionResponse
	if err := json.NewDecoder(resp.Body).Decode(&prediction); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if prediction.Error != "" {
		return nil, fmt.Errorf("prediction failed: %s", prediction.Error)
	}
	if prediction.Output == nil {
		return nil, ErrEmptyPayload
	}
	return prediction.Output, nil
}
