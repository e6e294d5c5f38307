package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

var (
	ErrNotConfigured = errors.New("provider not configured")
	ErrEmptyPayload  = errors.New("empty response payload")
)

// SpaceProvider calls a HuggingFace Space's Gradio predict API with a
// base64 data URI image payload.
type SpaceProvider struct {
	url        string
	spaceName  string
	token      string
	httpClient *http.Client
}

type spacePredictRequest struct {
	Data []string `json:"data"`
}

type spacePredictResponse struct {
	Data []any `json:"data"`
}

func NewSpaceProvider(url, spaceName, token string, timeout time.Duration) *SpaceProvider {
	return &SpaceProvider{
		url:       url,
		spaceName: spaceName,
		token:     token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (p *SpaceProvider) Name() string { return NameHuggingFaceSpace }

func (p *SpaceProvider) Configured() bool {
	return p.url != "" || p.spaceName != ""
}

func (p *SpaceProvider) Confidence() float64 { return 0.95 }

// baseURL resolves the Space endpoint. An explicit URL wins; otherwise the
// public hf.space host is derived from the "owner/space" name.
func (p *SpaceProvider) baseURL() string {
	if p.url != "" {
		return strings.TrimRight(p.url, "/")
	}
	return "https://" + strings.ReplaceAll(p.spaceName, "/", "-") + ".hf.space"
}

func (p *SpaceProvider) Recognize(ctx context.Context, image []byte) (any, error) {
	if !p.Configured() {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(spacePredictRequest{
		Data: []string{imageDataURI(image)},
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	reqURL := p.baseURL() + "/api/predict"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from space api", resp.StatusCode)
	}

	var predictResp spacePredictResponse
	if err := json.NewDecoder(resp.Body).Decode(&predictResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if len(predictResp.Data) == 0 {
		return nil, ErrEmptyPayload
	}
	return predictResp.Data[0], nil
}
