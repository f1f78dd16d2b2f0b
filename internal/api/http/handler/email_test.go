package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/adminpanel-server/internal/mocks"
	"github.com/dtroode/adminpanel-server/internal/model"
	"github.com/dtroode/adminpanel-server/internal/testutil"
)

func newEmailsRouter(t *testing.T) (http.Handler, *mocks.EmailService) {
	svc := mocks.NewEmailService(t)
	r, cm := newTestRouter()
	h := NewEmails(svc, cm, testPublicURL, testutil.MakeNoopLogger())
	r.POST("/admin/emails/test", h.Test)
	r.GET("/admin/emails/preview", h.Preview)
	r.GET("/admin/emails/diagnostics", h.Diagnostics)
	return r, svc
}

func TestEmails_Test(t *testing.T) {
	t.Run("delivered", func(t *testing.T) {
		r, svc := newEmailsRouter(t)
		svc.On("SendTest", mock.Anything, callerSession, model.EmailNewLogin, "ann@example.com", "Ann").
			Return(model.EmailResult{Success: true, ID: "em_1"}, nil)

		w := do(t, r, http.MethodPost, "/admin/emails/test", `{"type":"login","email":"ann@example.com","name":"Ann"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"id":"em_1"}`, w.Body.String())
	})

	t.Run("soft failure", func(t *testing.T) {
		r, svc := newEmailsRouter(t)
		svc.On("SendTest", mock.Anything, callerSession, model.EmailWelcome, "ann@example.com", "").
			Return(model.EmailResult{Error: "email service not configured"}, nil)

		w := do(t, r, http.MethodPost, "/admin/emails/test", `{"type":"welcome","email":"ann@example.com"}`)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.JSONEq(t, `{"success":false,"error":"email service not configured"}`, w.Body.String())
	})

	t.Run("unknown type", func(t *testing.T) {
		r, _ := newEmailsRouter(t)

		w := do(t, r, http.MethodPost, "/admin/emails/test", `{"type":"digest","email":"ann@example.com"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing email", func(t *testing.T) {
		r, _ := newEmailsRouter(t)

		w := do(t, r, http.MethodPost, "/admin/emails/test", `{"type":"welcome"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid address from service", func(t *testing.T) {
		r, svc := newEmailsRouter(t)
		svc.On("SendTest", mock.Anything, callerSession, model.EmailWelcome, "nope", "").
			Return(model.EmailResult{}, model.NewInvalidInputError("invalid email address"))

		w := do(t, r, http.MethodPost, "/admin/emails/test", `{"type":"welcome","email":"nope"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"invalid email address"}`, w.Body.String())
	})
}

func TestEmails_Preview(t *testing.T) {
	r, svc := newEmailsRouter(t)
	svc.On("Preview", mock.Anything, callerSession, model.EmailMagicLink, "Ann").
		Return(model.EmailMessage{Kind: model.EmailMagicLink, Subject: "Sign in", HTML: "<p>link</p>"}, nil)

	w := do(t, r, http.MethodGet, "/admin/emails/preview?type=magic-link&name=Ann", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "Sign in", w.Header().Get("X-Email-Subject"))
	assert.Equal(t, "<p>link</p>", w.Body.String())

	w = do(t, r, http.MethodGet, "/admin/emails/preview?type=digest", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEmails_Diagnostics(t *testing.T) {
	r, svc := newEmailsRouter(t)
	svc.On("Diagnostics", mock.Anything, callerSession).
		Return(model.EmailDiagnostics{Configured: true, KeyPrefix: "re_123...", KeyLength: 13}, nil)

	w := do(t, r, http.MethodGet, "/admin/emails/diagnostics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"keyPrefix":"re_123..."`)
}
