package forecast

import (
	"encoding/json"
	"fmt"
)

const weatherSystemInstruction = `You are a helpful weather assistant.
When asked for weather, use Google Search to find the latest current weather and a 5-day forecast.
You MUST output the final answer as a VALID JSON object wrapped in a markdown code block (e.g., ` + "```json ... ```" + `).
The JSON schema must be exactly:
{
  "location": "City, Country",
  "current": {
    "temp": "15°C",
    "condition": "Partly Cloudy",
    "humidity": "60%",
    "wind": "10 km/h NW",
    "feels_like": "14°C"
  },
  "forecast": [
    { "day": "Mon", "temp_high": "18°", "temp_low": "10°", "condition": "Sunny" },
    ... (5 days total)
  ],
  "advice": "A short, witty, or helpful sentence about what to wear or do."
}
If you cannot find specific data, make a reasonable estimate based on the search results or omit the field.
Do not include any conversational text outside the JSON block.`

const insightsSystemInstruction = `You are a data scientist specializing in meteorology.
Generate a response in valid JSON format (wrapped in ` + "```json```" + `) containing two parts:
1. "analysisSummary": A brief, professional 2-sentence summary analyzing the temperature trend (e.g., "Temperatures are steadily rising..." or "A cold front is approaching...").
2. "algorithmSteps": An array of 4 steps (objects with "title" and "description") explaining the flow of how a weather prediction model (like GFS) processes data to get this result.`

func weatherPrompt(location string) string {
	return fmt.Sprintf("Find the current weather and 5-day forecast for: %s. Remember to format as JSON.", location)
}

func insightsPrompt(current CurrentConditions) (string, error) {
	payload, err := json.Marshal(current)
	if err != nil {
		return "", fmt.Errorf("marshal current conditions: %w", err)
	}
	return fmt.Sprintf("Generate analysis summary and algorithm steps for this weather data: %s", payload), nil
}
