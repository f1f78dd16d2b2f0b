package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	httpContext "github.com/dtroode/adminpanel-server/internal/api/http/context"
	"github.com/dtroode/adminpanel-server/internal/model"
)

const testPublicURL = "https://chat.example.com/"

var callerSession = &model.Session{UserID: "admin-1"}

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter returns an engine whose requests carry callerSession.
func newTestRouter() (*gin.Engine, *httpContext.Manager) {
	cm := httpContext.NewManager()
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(cm.SetSessionToContext(c.Request.Context(), callerSession))
		c.Next()
	})
	return r, cm
}

func do(t *testing.T, r http.Handler, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
