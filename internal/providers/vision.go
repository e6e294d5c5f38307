package providers

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const visionPrompt = "Extract all text from this image. Return only the extracted text, preserving the original layout as closely as possible."

// VisionProvider invokes an OpenAI-compatible hosted vision model through
// the official client library.
type VisionProvider struct {
	apiKey string
	model  string
	client *openai.Client
}

func NewVisionProvider(apiKey, baseURL, model string) *VisionProvider {
	p := &VisionProvider{
		apiKey: apiKey,
		model:  model,
	}
	if apiKey == "" {
		return p
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	p.client = openai.NewClientWithConfig(cfg)
	return p
}

func (p *VisionProvider) Name() string { return NameOpenAIVision }

func (p *VisionProvider) Configured() bool { return p.client != nil }

func (p *VisionProvider) Confidence() float64 { return 0.95 }

func (p *VisionProvider) Recognize(ctx context.Context, image []byte) (any, error) {
	if !p.Configured() {
		return nil, ErrNotConfigured
	}

	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: imageDataURI(image),
						},
					},
					{
						Type: openai.ChatMessagePartTypeText,
						Text: visionPrompt,
					},
				},
			},
		},
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyPayload
	}
	return resp.Choices[0].Message.Content, nil
}
