package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// SystemInstruction pins the model to the recommendation domain and the JSON
// shape downstream validation expects.
const SystemInstruction = `당신은 서울 지역 장소 추천 도우미입니다. 사용자의 요청에 맞는 장소를 추천하세요.

규칙:
- 서울 안의 실제 장소만 추천합니다.
- 각 장소의 description은 100자 이하로 작성합니다.
- 각 장소의 id는 place_1, place_2 형식을 따릅니다.
- latitude/longitude는 실제로 그럴듯한 좌표여야 하며, 모르면 null로 둡니다.

응답은 반드시 다음 JSON 구조를 따릅니다:
{"places":[{"id":"place_1","name":"...","description":"...","address":"...","latitude":37.5,"longitude":127.0}],"total_count":1,"query_info":{"location":"...","type":"..."}}`

// Generator produces raw model output for a prompt. The real client talks to
// Gemini; tests inject stubs.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Client wraps the Gemini SDK with fixed generation parameters. Every call is
// a stateless single-turn generation so unrelated requests never share
// conversation context.
type Client struct {
	client      *genai.Client
	model       string
	temperature float32
	maxTokens   int32
	structured  bool
}

// Options carries the one-time generation configuration.
type Options struct {
	Model            string
	Temperature      float32
	MaxOutputTokens  int32
	StructuredOutput bool
}

// NewClient builds a Gemini client authenticated with the given API key.
func NewClient(ctx context.Context, apiKey string, opts Options) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key must not be empty")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Client{
		client:      client,
		model:       opts.Model,
		temperature: opts.Temperature,
		maxTokens:   opts.MaxOutputTokens,
		structured:  opts.StructuredOutput,
	}, nil
}

// Generate sends one prompt and returns the raw response text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr[float32](c.temperature),
		MaxOutputTokens:   c.maxTokens,
		SystemInstruction: genai.NewContentFromText(SystemInstruction, genai.RoleUser),
	}
	if c.structured {
		cfg.ResponseMIMEType = "application/json"
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return "", errors.New("no content found in gemini response")
	}
	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part != nil && part.Text != "" {
				return part.Text
			}
		}
	}
	return ""
}

var _ Generator = (*Client)(nil)
