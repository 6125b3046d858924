package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nshtkum/perplexchecker/internal/model"
	"github.com/nshtkum/perplexchecker/internal/service"
)

// DefaultSessionID is used when the client sends no X-Session-ID header
const DefaultSessionID = "default"

// SearchHandler handles property and image search HTTP requests
type SearchHandler struct {
	searchService    *service.SearchService
	defaultMaxImages int
	maxImagesCap     int
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService *service.SearchService, defaultMaxImages, maxImagesCap int) *SearchHandler {
	return &SearchHandler{
		searchService:    searchService,
		defaultMaxImages: defaultMaxImages,
		maxImagesCap:     maxImagesCap,
	}
}

// SearchProperty handles POST /api/v1/property/search
func (h *SearchHandler) SearchProperty(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if !trimRequest(c, &req) {
		return
	}

	response, err := h.searchService.SearchProperty(c.Request.Context(), sessionID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// SearchImages handles POST /api/v1/images/search
func (h *SearchHandler) SearchImages(c *gin.Context) {
	var req model.ImageSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if !trimRequest(c, &req.SearchRequest) {
		return
	}

	// Validate and cap limits
	if req.MaxResults <= 0 {
		req.MaxResults = h.defaultMaxImages
	}
	if req.MaxResults > h.maxImagesCap {
		req.MaxResults = h.maxImagesCap
	}

	response, err := h.searchService.SearchImages(c.Request.Context(), sessionID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// trimRequest normalizes free-form user input at the boundary and rejects
// empty queries before any remote call is attempted
func trimRequest(c *gin.Context, req *model.SearchRequest) bool {
	req.Query = strings.TrimSpace(req.Query)
	req.Model = strings.TrimSpace(req.Model)
	req.APIKey = strings.TrimSpace(req.APIKey)

	if req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "query must not be empty",
			"error_kind": string(service.KindInvalidArgument),
		})
		return false
	}
	return true
}

// sessionID reads the caller's session from the X-Session-ID header
func sessionID(c *gin.Context) string {
	id := strings.TrimSpace(c.GetHeader("X-Session-ID"))
	if id == "" {
		return DefaultSessionID
	}
	return id
}
