package ports

import "context"

// Completion purposes used for logging and metrics labels
const (
	PurposeWeather  = "weather"
	PurposeInsights = "insights"
)

// CompletionRequest describes a single call to the generative AI service
type CompletionRequest struct {
	Purpose           string
	Prompt            string
	SystemInstruction string
	Temperature       float32
	EnableSearch      bool
}

// Citation is a web source the service grounded its answer on
type Citation struct {
	Title string
	URI   string
}

// CompletionResponse carries the generated text and any grounding citations
type CompletionResponse struct {
	Text      string
	Citations []Citation
}

// CompletionService defines the contract for generative AI providers
type CompletionService interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	GetProviderName() string
}
