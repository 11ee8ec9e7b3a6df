package external

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^)\s]+)\)`)
	bareURLPattern      = regexp.MustCompile(`https?://[^\s<>"'()\[\]]+`)
)

// OpenAICompletionService implements CompletionService for OpenAI-compatible chat APIs
type OpenAICompletionService struct {
	client *openai.Client
	model  string
}

// OpenAICompletionParams holds parameters for creating the OpenAI service
type OpenAICompletionParams struct {
	APIKey  string
	Model   string
	BaseURL string
}

func NewOpenAICompletionService(params OpenAICompletionParams) (*OpenAICompletionService, error) {
	if params.APIKey == "" {
		return nil, errors.NewConfigurationError("openai API key cannot be empty", nil)
	}
	if params.Model == "" {
		return nil, errors.NewConfigurationError("openai model cannot be empty", nil)
	}

	cfg := openai.DefaultConfig(params.APIKey)
	if params.BaseURL != "" {
		cfg.BaseURL = strings.TrimRight(params.BaseURL, "/")
	}

	return &OpenAICompletionService{
		client: openai.NewClientWithConfig(cfg),
		model:  params.Model,
	}, nil
}

// Complete sends one chat completion. Chat APIs have no search grounding,
// so citations are the links the model wrote into its answer.
func (s *OpenAICompletionService) Complete(ctx context.Context, req ports.CompletionRequest) (*ports.CompletionResponse, error) {
	if req.Prompt == "" {
		return nil, errors.NewValidationError("prompt cannot be empty")
	}

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.SystemInstruction != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemInstruction,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Messages:    messages,
		Temperature: req.Temperature,
	})
	if err != nil {
		return nil, errors.NewExternalAPIError("openai request failed", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.NewExternalAPIError("openai returned no choices", nil)
	}

	text := resp.Choices[0].Message.Content
	return &ports.CompletionResponse{
		Text:      text,
		Citations: citationsFromText(text),
	}, nil
}

func (s *OpenAICompletionService) GetProviderName() string {
	return "openai"
}

// citationsFromText extracts markdown links, then bare URLs, deduplicated by URI
func citationsFromText(text string) []ports.Citation {
	citations := []ports.Citation{}
	seen := make(map[string]bool)

	for _, m := range markdownLinkPattern.FindAllStringSubmatch(text, -1) {
		uri := m[2]
		if seen[uri] {
			continue
		}
		seen[uri] = true
		citations = append(citations, ports.Citation{Title: strings.TrimSpace(m[1]), URI: uri})
	}

	for _, uri := range bareURLPattern.FindAllString(text, -1) {
		uri = strings.TrimRight(uri, ".,;:!?")
		if seen[uri] {
			continue
		}
		seen[uri] = true
		citations = append(citations, ports.Citation{Title: hostOf(uri), URI: uri})
	}

	return citations
}

func hostOf(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil || parsed.Host == "" {
		return uri
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}
