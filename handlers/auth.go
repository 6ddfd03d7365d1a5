package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/devfolio/backend/go-services/internal/config"
	"github.com/devfolio/devfolio/backend/go-services/internal/sessions"
	"github.com/devfolio/devfolio/backend/go-services/pkg/logger"
	"github.com/devfolio/devfolio/backend/go-services/pkg/metrics"
)

// LoginRequest is the static-credential login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthHandler implements the cookie-based admin login flow.
type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// Register routes under /api/auth
func (h *AuthHandler) Register(rg *gin.RouterGroup) {
	a := rg.Group("/api/auth")
	a.POST("/login", h.Login)
	a.GET("/logout", h.Logout)
	a.POST("/logout", h.Logout)
	a.GET("/me", h.Me)
}

// Login compares the submitted pair against the configured admin credentials
// and issues the session cookie on match. No cookie is ever set on mismatch.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "username and password are required"})
		return
	}

	if req.Username != h.cfg.Admin.Username || req.Password != h.cfg.Admin.Password {
		metrics.LoginAttempts.WithLabelValues("failure").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid username or password"})
		return
	}

	user := sessions.User{ID: 1, Username: req.Username, Role: "admin"}
	cookie, err := sessions.NewCookie(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to create session"})
		return
	}
	http.SetCookie(c.Writer, cookie)
	metrics.LoginAttempts.WithLabelValues("success").Inc()
	logger.Infof("admin login: %s", user.Username)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "logged in", "user": user})
}

// Logout clears the session cookie unconditionally. Browser navigation (GET)
// is redirected back to the login page; API callers (POST) get JSON.
func (h *AuthHandler) Logout(c *gin.Context) {
	http.SetCookie(c.Writer, sessions.ExpiredCookie())

	if c.Request.Method == http.MethodGet {
		c.Redirect(http.StatusFound, "/admin/login")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "logged out"})
}

// Me returns the decoded session payload. This is the only place the cookie
// value is actually inspected; a present-but-undecodable value fails here.
func (h *AuthHandler) Me(c *gin.Context) {
	u, err := sessions.CurrentUser(c.Request)
	if err != nil {
		if errors.Is(err, sessions.ErrCorrupt) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "corrupt session cookie"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": u})
}
