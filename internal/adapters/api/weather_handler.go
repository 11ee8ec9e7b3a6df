package api

import (
	stderrors "errors"
	"io"
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/core/forecast"
	"weatherdash.app/pkg/errors"
)

// WeatherQuery represents the query string of a free-text search
type WeatherQuery struct {
	Location string `form:"location" binding:"required,location"`
}

// GeolocationRequest carries the outcome of the browser's position lookup
type GeolocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
	Error     string   `json:"error"`
}

// getWeather handles GET /api/weather requests
func (s *HTTPServerAdapter) getWeather(c *gin.Context) {
	var query WeatherQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		slog.Debug("Weather query binding error", "error", err)
		s.handleError(c, errors.NewValidationError("location parameter is required"))
		return
	}

	slog.Debug("Searching weather", "location", query.Location)

	result, err := s.dashboard.Search(c.Request.Context(), query.Location)
	if err != nil {
		slog.Error("Weather search error", "error", err, "location", query.Location)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, forecast.BuildView(result))
}

// postGeolocation handles POST /api/weather/geolocation requests
func (s *HTTPServerAdapter) postGeolocation(c *gin.Context) {
	var req GeolocationRequest
	if err := c.ShouldBindJSON(&req); err != nil && !stderrors.Is(err, io.EOF) {
		slog.Debug("Geolocation binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid coordinates"))
		return
	}

	coords := dashboard.Coordinates{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Error:     req.Error,
	}

	result, err := s.dashboard.SearchCoordinates(c.Request.Context(), coords)
	if err != nil {
		slog.Warn("Geolocation search error", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, forecast.BuildView(result))
}
