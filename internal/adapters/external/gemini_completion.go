// Package external provides adapters for external services
// These adapters implement ports for generative AI providers and key-value stores.
package external

import (
	"context"

	"google.golang.org/genai"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// GeminiCompletionService implements CompletionService using the Gemini API
type GeminiCompletionService struct {
	client *genai.Client
	model  string
}

// GeminiCompletionParams holds parameters for creating the Gemini service
type GeminiCompletionParams struct {
	APIKey  string
	Model   string
	BaseURL string
}

func NewGeminiCompletionService(ctx context.Context, params GeminiCompletionParams) (*GeminiCompletionService, error) {
	if params.APIKey == "" {
		return nil, errors.NewConfigurationError("gemini API key cannot be empty", nil)
	}
	if params.Model == "" {
		return nil, errors.NewConfigurationError("gemini model cannot be empty", nil)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  params.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if params.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: params.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, errors.NewConfigurationError("failed to create gemini client", err)
	}

	return &GeminiCompletionService{client: client, model: params.Model}, nil
}

// Complete sends one prompt; search grounding is attached when requested
func (s *GeminiCompletionService) Complete(ctx context.Context, req ports.CompletionRequest) (*ports.CompletionResponse, error) {
	if req.Prompt == "" {
		return nil, errors.NewValidationError("prompt cannot be empty")
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if req.SystemInstruction != "" {
		config.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}
	if req.EnableSearch {
		config.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(req.Prompt), config)
	if err != nil {
		return nil, errors.NewExternalAPIError("gemini request failed", err)
	}

	return &ports.CompletionResponse{
		Text:      resp.Text(),
		Citations: citationsFromGemini(resp),
	}, nil
}

func (s *GeminiCompletionService) GetProviderName() string {
	return "gemini"
}

// citationsFromGemini collects the web sources of the first candidate's grounding metadata
func citationsFromGemini(resp *genai.GenerateContentResponse) []ports.Citation {
	citations := []ports.Citation{}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return citations
	}

	metadata := resp.Candidates[0].GroundingMetadata
	if metadata == nil {
		return citations
	}

	for _, chunk := range metadata.GroundingChunks {
		if chunk == nil || chunk.Web == nil {
			continue
		}
		citations = append(citations, ports.Citation{
			Title: chunk.Web.Title,
			URI:   chunk.Web.URI,
		})
	}
	return citations
}
