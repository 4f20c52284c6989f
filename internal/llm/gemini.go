package llm

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"google.golang.org/genai"

	"alfredoptarigan/interview-coach/internal/schemas"
)

const DefaultGeminiModel = "gemini-2.5-flash"

type GeminiConfig struct {
	APIKey          string
	Model           string
	Temperature     float32
	MaxOutputTokens int32

	// BaseURL and HTTPClient override the provider endpoint. Tests use them.
	BaseURL    string
	HTTPClient *http.Client
}

type GeminiClient struct {
	client          *genai.Client
	modelName       string
	temperature     float32
	maxOutputTokens int32
}

func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = DefaultGeminiModel
	}

	return &GeminiClient{
		client:          client,
		modelName:       modelName,
		temperature:     cfg.Temperature,
		maxOutputTokens: cfg.MaxOutputTokens,
	}, nil
}

// GenerateJSON implements Client.
func (g *GeminiClient) GenerateJSON(ctx context.Context, prompt string, output schemas.Contract) (string, error) {
	temperature := g.temperature
	config := &genai.GenerateContentConfig{
		Temperature:      &temperature,
		MaxOutputTokens:  g.maxOutputTokens,
		ResponseMIMEType: "application/json",
		ResponseSchema:   ResponseSchema(output),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		log.Printf("❌ Gemini API error: %v", err)
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		if len(resp.Candidates) > 0 && resp.Candidates[0].FinishReason != "" {
			return "", fmt.Errorf("no text content in response (finish reason: %s)", resp.Candidates[0].FinishReason)
		}
		return "", fmt.Errorf("no text content in response")
	}

	return CleanJSONBlock(text), nil
}

// ResponseSchema converts a contract into the schema Gemini uses to constrain
// its output.
func ResponseSchema(contract schemas.Contract) *genai.Schema {
	properties := make(map[string]*genai.Schema, len(contract.Fields))
	for _, f := range contract.Fields {
		properties[f.Name] = &genai.Schema{
			Type:        genai.TypeString,
			Description: f.Description,
		}
	}

	return &genai.Schema{
		Type:             genai.TypeObject,
		Title:            contract.Name,
		Description:      contract.Description,
		Properties:       properties,
		Required:         contract.FieldNames(),
		PropertyOrdering: contract.FieldNames(),
	}
}
