package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/adminpanel-server/internal/logger"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// Logging logs method, route, status and duration of every request.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle is the gin handler function. A request id sent by the client is kept, otherwise a new
// one is generated.
func (l *Logging) Handle(c *gin.Context) {
	start := time.Now()

	requestID := c.GetHeader(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header(RequestIDHeader, requestID)
	log := l.logger.With("request_id", requestID)

	c.Next()

	status := c.Writer.Status()
	args := []any{
		"method", c.Request.Method,
		"route", routeOf(c),
		"status", status,
		"duration_ms", time.Since(start).Milliseconds(),
	}

	if status >= 500 {
		log.Error("HTTP request failed", append(args, "errors", c.Errors.String())...)
		return
	}
	log.Info("HTTP request completed", args...)
}

// routeOf returns the matched route template so that path parameters do not explode label and
// log cardinality.
func routeOf(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return "unmatched"
}
