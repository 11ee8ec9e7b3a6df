package forecast

import (
	"fmt"
	"strings"
)

// CurrentConditions holds display strings exactly as the AI service produced them
type CurrentConditions struct {
	Temp      string `json:"temp"`
	Condition string `json:"condition"`
	Humidity  string `json:"humidity"`
	Wind      string `json:"wind"`
	FeelsLike string `json:"feels_like,omitempty"`
}

// ForecastDay is one entry of the multi-day outlook
type ForecastDay struct {
	Day       string `json:"day"`
	TempHigh  string `json:"temp_high"`
	TempLow   string `json:"temp_low"`
	Condition string `json:"condition"`
}

// WeatherRecord is the structured payload decoded from the weather response
type WeatherRecord struct {
	Location string            `json:"location"`
	Current  CurrentConditions `json:"current"`
	Forecast []ForecastDay     `json:"forecast"`
	Advice   string            `json:"advice"`
}

// SourceRef is a web source the weather answer was grounded on
type SourceRef struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// AlgorithmStep is one stage of the model explanation
type AlgorithmStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Insights is the optional analysis produced by the second request
type Insights struct {
	AnalysisSummary string          `json:"analysisSummary"`
	AlgorithmSteps  []AlgorithmStep `json:"algorithmSteps"`
}

// QueryResult is the merged outcome of one weather lookup.
// RawText is always the primary response text, even when Data is nil.
type QueryResult struct {
	Data     *WeatherRecord `json:"data"`
	RawText  string         `json:"rawText"`
	Sources  []SourceRef    `json:"sources"`
	Insights *Insights      `json:"insights,omitempty"`
}

// HasData reports whether a structured record was decoded
func (r *QueryResult) HasData() bool {
	return r != nil && r.Data != nil
}

// QueryRequest represents a request for weather information
type QueryRequest struct {
	Location string
}

// IsValid validates the query request
func (q *QueryRequest) IsValid() error {
	if strings.TrimSpace(q.Location) == "" {
		return fmt.Errorf("location cannot be empty")
	}
	return nil
}

// NormalizeLocation trims surrounding whitespace from the location
func (q *QueryRequest) NormalizeLocation() {
	q.Location = strings.TrimSpace(q.Location)
}

// CacheKey returns the result cache key for the request
func (q *QueryRequest) CacheKey() string {
	return "forecast:" + strings.ToLower(strings.TrimSpace(q.Location))
}
