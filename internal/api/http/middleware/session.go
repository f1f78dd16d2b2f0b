package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/adminpanel-server/internal/logger"
	"github.com/dtroode/adminpanel-server/internal/model"
)

// Session resolves the caller session from request headers and stores it on the request context.
// Requests without a session pass through; the handlers decide whether that is allowed.
type Session struct {
	oracle         model.SessionOracle
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewSession creates a new Session middleware instance.
func NewSession(oracle model.SessionOracle, contextManager model.ContextManager, logger *logger.Logger) *Session {
	return &Session{oracle: oracle, contextManager: contextManager, logger: logger}
}

// Handle is the gin handler function.
func (m *Session) Handle(c *gin.Context) {
	session, err := m.oracle.GetSession(c.Request.Context(), c.Request.Header)
	if err != nil {
		m.logger.Error("Session middleware: failed to resolve session",
			"path", c.Request.URL.Path,
			"error", err.Error())
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if session != nil {
		ctx := m.contextManager.SetSessionToContext(c.Request.Context(), session)
		c.Request = c.Request.WithContext(ctx)
	}

	c.Next()
}
