package services

import (
	"context"

	"google.golang.org/genai"
)

// DefaultAdviceModel is the Gemini model used for advice text.
const DefaultAdviceModel = "gemini-1.5-flash-latest"

// GeminiGenerator generates text through the Gemini API. Without an API key
// no client is created and every call fails with ErrMissingCredential.
type GeminiGenerator struct {
	client *genai.Client
}

func NewGeminiGenerator(ctx context.Context, apiKey string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return &GeminiGenerator{}, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiGenerator{client: client}, nil
}

// Configured reports whether an API client was created.
func (g *GeminiGenerator) Configured() bool {
	return g != nil && g.client != nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, modelName, prompt string) (string, error) {
	if !g.Configured() {
		return "", ErrMissingCredential
	}
	resp, err := g.client.Models.GenerateContent(ctx, modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
