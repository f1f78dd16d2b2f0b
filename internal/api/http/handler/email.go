package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/adminpanel-server/internal/logger"
	"github.com/dtroode/adminpanel-server/internal/model"
)

// EmailService defines the admin email tooling.
type EmailService interface {
	SendTest(ctx context.Context, session *model.Session, kind model.EmailKind, to, name string) (model.EmailResult, error)
	Preview(ctx context.Context, session *model.Session, kind model.EmailKind, name string) (model.EmailMessage, error)
	Diagnostics(ctx context.Context, session *model.Session) (model.EmailDiagnostics, error)
}

// Emails handles the /admin/emails endpoints.
type Emails struct {
	base
	emailService EmailService
}

// NewEmails creates a new Emails handler.
func NewEmails(emailService EmailService, contextManager model.ContextManager, publicURL string, logger *logger.Logger) *Emails {
	return &Emails{
		base:         base{contextManager: contextManager, publicURL: publicURL, logger: logger},
		emailService: emailService,
	}
}

type testEmailRequest struct {
	Type  string `json:"type" binding:"required"`
	Email string `json:"email" binding:"required"`
	Name  string `json:"name"`
}

const invalidEmailType = "invalid email type: use welcome, login, lookout or magic-link"

// Test sends a sample email. A delivery failure is reported with 502 and the send result.
func (h *Emails) Test(c *gin.Context) {
	var req testEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "type and email are required")
		return
	}

	kind, ok := model.ParseEmailKind(req.Type)
	if !ok {
		badRequest(c, invalidEmailType)
		return
	}

	result, err := h.emailService.SendTest(c.Request.Context(), h.session(c), kind, req.Email, req.Name)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if !result.Success {
		h.logger.Warn("Email handler: test email not delivered",
			"kind", kind,
			"error", result.Error)
		c.JSON(http.StatusBadGateway, result)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Preview renders a sample email as HTML.
func (h *Emails) Preview(c *gin.Context) {
	kind, ok := model.ParseEmailKind(c.DefaultQuery("type", string(model.EmailWelcome)))
	if !ok {
		badRequest(c, invalidEmailType)
		return
	}

	msg, err := h.emailService.Preview(c.Request.Context(), h.session(c), kind, c.Query("name"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("X-Email-Subject", msg.Subject)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(msg.HTML))
}

// Diagnostics reports the email configuration.
func (h *Emails) Diagnostics(c *gin.Context) {
	diag, err := h.emailService.Diagnostics(c.Request.Context(), h.session(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, diag)
}
