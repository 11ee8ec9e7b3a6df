package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdash.app/pkg/errors"
)

func TestHTTPServerAdapter_HandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	server := &HTTPServerAdapter{}

	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "ValidationError",
			err:             errors.NewValidationError("location is required"),
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "location is required",
		},
		{
			name:            "NotFoundError",
			err:             errors.NewNotFoundError("history entry abc not found"),
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "history entry abc not found",
		},
		{
			name:            "BusyError",
			err:             errors.NewBusyError("a weather lookup is already in progress"),
			expectedStatus:  http.StatusConflict,
			expectedMessage: "a weather lookup is already in progress",
		},
		{
			name:            "GeolocationError",
			err:             errors.NewGeolocationError("Location access denied or unavailable.", nil),
			expectedStatus:  http.StatusUnprocessableEntity,
			expectedMessage: "Location access denied or unavailable.",
		},
		{
			name:            "ExternalAPIErrorWrapped",
			err:             fmt.Errorf("query weather for Paris: %w", errors.NewExternalAPIError("weather request failed", nil)),
			expectedStatus:  http.StatusServiceUnavailable,
			expectedMessage: "Could not fetch weather data. Please try again.",
		},
		{
			name:            "DatabaseError",
			err:             errors.NewDatabaseError("failed to clear history", nil),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
		{
			name:            "ConfigurationError",
			err:             errors.NewConfigurationError("configuration error", nil),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
		{
			name:            "PlainError",
			err:             fmt.Errorf("boom"),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/test", func(c *gin.Context) {
				server.handleError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedMessage, response.Error)
		})
	}
}
