package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/adminpanel-server/internal/logger"
)

func newLoggedRouter(buf *bytes.Buffer) *gin.Engine {
	r := gin.New()
	r.Use(NewLogging(logger.NewWithWriter(buf, 0, "json")).Handle)
	r.GET("/admin/users/:userId", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
	return r
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestLogging_Handle(t *testing.T) {
	t.Run("logs route template and generates request id", func(t *testing.T) {
		var buf bytes.Buffer
		r := newLoggedRouter(&buf)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/users/42", nil))

		requestID := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(requestID)
		require.NoError(t, err)

		entry := lastEntry(t, &buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "/admin/users/:userId", entry["route"])
		assert.Equal(t, float64(http.StatusNoContent), entry["status"])
		assert.Equal(t, requestID, entry["request_id"])
	})

	t.Run("keeps client request id", func(t *testing.T) {
		var buf bytes.Buffer
		r := newLoggedRouter(&buf)

		req := httptest.NewRequest(http.MethodGet, "/admin/users/42", nil)
		req.Header.Set(RequestIDHeader, "req-7")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "req-7", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "req-7", lastEntry(t, &buf)["request_id"])
	})

	t.Run("server errors at error level", func(t *testing.T) {
		var buf bytes.Buffer
		r := newLoggedRouter(&buf)

		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, "ERROR", lastEntry(t, &buf)["level"])
	})

	t.Run("unmatched route", func(t *testing.T) {
		var buf bytes.Buffer
		r := newLoggedRouter(&buf)

		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, "unmatched", lastEntry(t, &buf)["route"])
	})
}
