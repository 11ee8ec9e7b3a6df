package forecast

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	jsonFencePattern    = regexp.MustCompile("(?is)```json\\s*\\n?(.*?)```")
	genericFencePattern = regexp.MustCompile("(?s)```(?:[A-Za-z0-9_+-]*[ \\t]*\\n)?(.*?)```")
	fenceOpenPattern    = regexp.MustCompile("```[A-Za-z0-9_+-]*[ \\t]*\\n?")
)

// candidate is a slice of text that may hold the JSON object.
// An open candidate runs to the end of the response and must be followed by a closing fence.
type candidate struct {
	text string
	open bool
}

type extractor func(text string) []candidate

// extractors are tried in order; a candidate that fails to decode falls through to the next one.
var extractors = []extractor{
	fencedJSON,
	fencedAny,
	fenceOpenings,
	bareObject,
}

func fencedJSON(text string) []candidate {
	return submatches(jsonFencePattern, text)
}

func fencedAny(text string) []candidate {
	return submatches(genericFencePattern, text)
}

// fenceOpenings covers fenced objects whose string values contain a fence marker
func fenceOpenings(text string) []candidate {
	locs := fenceOpenPattern.FindAllStringIndex(text, -1)
	candidates := make([]candidate, 0, len(locs))
	for _, loc := range locs {
		candidates = append(candidates, candidate{text: text[loc[1]:], open: true})
	}
	return candidates
}

func bareObject(text string) []candidate {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
		return []candidate{{text: trimmed}}
	}
	return nil
}

func submatches(pattern *regexp.Regexp, text string) []candidate {
	matches := pattern.FindAllStringSubmatch(text, -1)
	candidates := make([]candidate, 0, len(matches))
	for _, m := range matches {
		candidates = append(candidates, candidate{text: m[1]})
	}
	return candidates
}

// decodeObject decodes a single JSON object from c.
// Anything after the object other than whitespace, or a closing fence for open candidates, rejects it.
func decodeObject[T any](c candidate) (*T, bool) {
	text := strings.TrimSpace(c.text)
	if !strings.HasPrefix(text, "{") {
		return nil, false
	}

	decoder := json.NewDecoder(strings.NewReader(text))
	var target T
	if err := decoder.Decode(&target); err != nil {
		return nil, false
	}

	rest := strings.TrimSpace(text[decoder.InputOffset():])
	if c.open {
		if !strings.HasPrefix(rest, "```") {
			return nil, false
		}
	} else if rest != "" {
		return nil, false
	}
	return &target, true
}

// decodeEmbedded decodes the first JSON object found in text.
// It never panics and returns nil when nothing decodes.
func decodeEmbedded[T any](text string) *T {
	for _, extract := range extractors {
		for _, c := range extract(text) {
			if target, ok := decodeObject[T](c); ok {
				return target
			}
		}
	}
	return nil
}

// ParseWeatherRecord extracts the weather record from a free-form AI response.
// It returns nil when no structured data could be decoded.
func ParseWeatherRecord(text string) *WeatherRecord {
	return decodeEmbedded[WeatherRecord](text)
}

// ParseInsights extracts analysis insights from a free-form AI response
func ParseInsights(text string) *Insights {
	return decodeEmbedded[Insights](text)
}
