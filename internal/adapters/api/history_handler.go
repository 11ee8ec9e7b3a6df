package api

import (
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/core/forecast"
	"weatherdash.app/internal/core/history"
)

// HistoryResponse lists remembered lookups, newest first
type HistoryResponse struct {
	Entries []history.Entry `json:"entries"`
}

// getHistory handles GET /api/history requests
func (s *HTTPServerAdapter) getHistory(c *gin.Context) {
	c.JSON(http.StatusOK, HistoryResponse{Entries: s.dashboard.History()})
}

// clearHistory handles DELETE /api/history requests
func (s *HTTPServerAdapter) clearHistory(c *gin.Context) {
	if err := s.dashboard.ClearHistory(c.Request.Context()); err != nil {
		slog.Error("Clear history error", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, HistoryResponse{Entries: s.dashboard.History()})
}

// replayHistory handles POST /api/history/:id/replay requests
func (s *HTTPServerAdapter) replayHistory(c *gin.Context) {
	id := c.Param("id")

	result, err := s.dashboard.Replay(c.Request.Context(), id)
	if err != nil {
		slog.Error("Replay history error", "error", err, "id", id)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, forecast.BuildView(result))
}
