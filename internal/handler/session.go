package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nshtkum/perplexchecker/internal/service"
)

// SessionHandler exposes per-session call history and cost totals
type SessionHandler struct {
	searchService *service.SearchService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(searchService *service.SearchService) *SessionHandler {
	return &SessionHandler{
		searchService: searchService,
	}
}

// Get handles GET /api/v1/session
func (h *SessionHandler) Get(c *gin.Context) {
	summary, err := h.searchService.Session(c.Request.Context(), sessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}
