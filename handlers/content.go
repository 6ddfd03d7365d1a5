package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/devfolio/backend/go-services/internal/content"
	"github.com/devfolio/devfolio/backend/go-services/pkg/metrics"
	"github.com/devfolio/devfolio/backend/go-services/pkg/middleware"
)

// UpdateContentRequest targets one section with a partial record to merge.
type UpdateContentRequest struct {
	Section string          `json:"section"`
	Data    content.Section `json:"data"`
}

// ContentHandler serves the editable page content.
type ContentHandler struct {
	store *content.Store
}

func NewContentHandler(s *content.Store) *ContentHandler {
	return &ContentHandler{store: s}
}

// Register routes under /api/content
func (h *ContentHandler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/api/content")
	g.GET("/get", h.Get)
	g.POST("/update", middleware.RequireSession(), h.Update)
}

// Get returns the content document; a store with no prior writes serves the
// compiled-in defaults.
func (h *ContentHandler) Get(c *gin.Context) {
	doc := h.store.GetDocument(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true, "content": doc})
}

// Update merges the request data into the named section and returns the
// merged record.
func (h *ContentHandler) Update(c *gin.Context) {
	var req UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	merged, err := h.store.UpdateSection(c.Request.Context(), req.Section, req.Data)
	if err != nil {
		if errors.Is(err, content.ErrBadRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "section and data are required"})
			return
		}
		// write failures carry the triggering error verbatim
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to save content", "error": err.Error()})
		return
	}
	metrics.ContentUpdates.WithLabelValues(req.Section).Inc()
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "section updated", "content": merged})
}
