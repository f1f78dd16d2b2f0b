package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpContext "github.com/dtroode/adminpanel-server/internal/api/http/context"
	"github.com/dtroode/adminpanel-server/internal/mocks"
	"github.com/dtroode/adminpanel-server/internal/model"
	"github.com/dtroode/adminpanel-server/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSession_Handle(t *testing.T) {
	cm := httpContext.NewManager()

	tests := []struct {
		name       string
		session    *model.Session
		oracleErr  error
		wantStatus int
		wantUserID string
	}{
		{
			name:       "session stored",
			session:    &model.Session{UserID: "admin-1"},
			wantStatus: http.StatusOK,
			wantUserID: "admin-1",
		},
		{
			name:       "anonymous passes through",
			wantStatus: http.StatusOK,
		},
		{
			name:       "oracle failure",
			oracleErr:  errors.New("key service down"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oracle := mocks.NewSessionOracle(t)
			oracle.On("GetSession", mock.Anything, mock.Anything).Return(tt.session, tt.oracleErr)

			var gotUserID string
			reached := false
			r := gin.New()
			r.Use(NewSession(oracle, cm, testutil.MakeNoopLogger()).Handle)
			r.GET("/admin/stats", func(c *gin.Context) {
				reached = true
				if s, ok := cm.GetSessionFromContext(c.Request.Context()); ok {
					gotUserID = s.UserID
				}
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
			req.Header.Set("Authorization", "Bearer token")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantUserID, gotUserID)
			assert.Equal(t, tt.oracleErr == nil, reached)
			if tt.oracleErr != nil {
				require.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
			}
		})
	}
}
