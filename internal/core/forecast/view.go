package forecast

import "strings"

// Theme is the visual class derived from the current condition
type Theme string

const (
	ThemeDefault Theme = "default"
	ThemeStorm   Theme = "storm"
	ThemeCloudy  Theme = "cloudy"
	ThemeClear   Theme = "clear"
	ThemeSnow    Theme = "snow"
)

const (
	maxDisplayedSources = 4
	trendCeilingFloor   = 10
	trendPadding        = 5
	noDataMessage       = "No structured weather data could be extracted from the response."
)

// ClassifyTheme maps a condition description to a theme; the first matching rule wins
func ClassifyTheme(condition string) Theme {
	c := strings.ToLower(condition)
	switch {
	case strings.Contains(c, "rain") || strings.Contains(c, "storm"):
		return ThemeStorm
	case strings.Contains(c, "cloud") || strings.Contains(c, "overcast"):
		return ThemeCloudy
	case strings.Contains(c, "clear") || strings.Contains(c, "sunny"):
		return ThemeClear
	case strings.Contains(c, "snow"):
		return ThemeSnow
	default:
		return ThemeDefault
	}
}

// IsLight reports whether the theme uses a light background
func (t Theme) IsLight() bool {
	return t == ThemeSnow
}

// TrendPoint is one forecast day on the temperature chart
type TrendPoint struct {
	Day         string  `json:"day"`
	High        int     `json:"high"`
	Low         int     `json:"low"`
	HighPercent float64 `json:"highPercent"`
	LowPercent  float64 `json:"lowPercent"`
}

// Trend is the temperature chart series with its scale
type Trend struct {
	Points   []TrendPoint `json:"points"`
	ChartMin int          `json:"chartMin"`
	ChartMax int          `json:"chartMax"`
}

// BuildTrend computes chart bar heights as percentages of the padded temperature range
func BuildTrend(days []ForecastDay) Trend {
	maxTemp := trendCeilingFloor
	minTemp := 0
	points := make([]TrendPoint, 0, len(days))
	for _, d := range days {
		high := ParseTemperature(d.TempHigh)
		low := ParseTemperature(d.TempLow)
		maxTemp = max(maxTemp, high)
		minTemp = min(minTemp, low)
		points = append(points, TrendPoint{Day: d.Day, High: high, Low: low})
	}

	chartMin := 0
	if minTemp < 0 {
		chartMin = minTemp - trendPadding
	}
	chartMax := maxTemp + trendPadding
	chartRange := float64(chartMax - chartMin)

	for i := range points {
		points[i].HighPercent = float64(points[i].High-chartMin) / chartRange * 100
		points[i].LowPercent = float64(points[i].Low-chartMin) / chartRange * 100
	}

	return Trend{Points: points, ChartMin: chartMin, ChartMax: chartMax}
}

// View is the presentation model handed to the UI
type View struct {
	Theme    Theme          `json:"theme"`
	Light    bool           `json:"light"`
	Data     *WeatherRecord `json:"data"`
	Sources  []SourceRef    `json:"sources"`
	Insights *Insights      `json:"insights,omitempty"`
	Trend    *Trend         `json:"trend,omitempty"`
	Message  string         `json:"message,omitempty"`
	RawText  string         `json:"rawText"`
}

// BuildView derives the presentation model from a query result
func BuildView(result *QueryResult) View {
	view := View{Theme: ThemeDefault, Sources: []SourceRef{}}
	if result == nil {
		return view
	}

	view.RawText = result.RawText
	view.Insights = result.Insights
	view.Sources = result.Sources[:min(len(result.Sources), maxDisplayedSources)]
	if view.Sources == nil {
		view.Sources = []SourceRef{}
	}

	if !result.HasData() {
		view.Message = noDataMessage
		return view
	}

	view.Data = result.Data
	view.Theme = ClassifyTheme(result.Data.Current.Condition)
	view.Light = view.Theme.IsLight()
	if result.Insights != nil {
		trend := BuildTrend(result.Data.Forecast)
		view.Trend = &trend
	}
	return view
}
