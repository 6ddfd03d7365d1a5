package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/devfolio/backend/go-services/internal/contact"
	"github.com/devfolio/devfolio/backend/go-services/pkg/metrics"
	"github.com/devfolio/devfolio/backend/go-services/pkg/middleware"
)

// SubmitContactRequest is the public contact-form payload. Phone is optional.
type SubmitContactRequest struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
}

// ContactHandler serves the contact-form pipeline: public submit, admin list
// and delete.
type ContactHandler struct {
	store *contact.Store
}

func NewContactHandler(s *contact.Store) *ContactHandler {
	return &ContactHandler{store: s}
}

// Register routes under /api/contact
func (h *ContactHandler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/api/contact")
	g.POST("/submit", h.Submit)
	g.GET("/list", middleware.RequireSession(), h.List)
	g.DELETE("/delete", middleware.RequireSession(), h.Delete)
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	sub, err := h.store.Append(c.Request.Context(), contact.Fields{
		Fullname: req.Fullname,
		Email:    req.Email,
		Phone:    req.Phone,
		Message:  req.Message,
	})
	if err != nil {
		if errors.Is(err, contact.ErrBadRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "fullname, email and message are required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to save message", "error": err.Error()})
		return
	}
	metrics.ContactSubmissions.Inc()
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "message received", "submission": sub})
}

func (h *ContactHandler) List(c *gin.Context) {
	subs := h.store.List(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true, "submissions": subs})
}

// Delete removes one submission by the id query parameter.
func (h *ContactHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "id is required"})
		return
	}

	if err := h.store.DeleteByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, contact.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "submission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to delete message", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "submission deleted"})
}
