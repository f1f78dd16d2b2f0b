package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dtroode/adminpanel-server/internal/logger"
	"github.com/dtroode/adminpanel-server/internal/model"
)

// Emails lets an admin send and preview sample transactional emails.
type Emails struct {
	gate     Authorizer
	notifier model.Notifier
	appURL   string
	now      func() time.Time
	logger   *logger.Logger
}

func NewEmails(gate Authorizer, notifier model.Notifier, appURL string, logger *logger.Logger) *Emails {
	return &Emails{
		gate:     gate,
		notifier: notifier,
		appURL:   strings.TrimRight(appURL, "/"),
		now:      time.Now,
		logger:   logger,
	}
}

// SendTest sends a sample of kind to the given address.
// Delivery failures are reported in the result, not as an error.
func (s *Emails) SendTest(ctx context.Context, session *model.Session, kind model.EmailKind, to, name string) (model.EmailResult, error) {
	if err := s.gate.RequireAdmin(ctx, session); err != nil {
		return model.EmailResult{}, err
	}

	addr, err := mail.ParseAddress(strings.TrimSpace(to))
	if err != nil {
		return model.EmailResult{}, model.NewInvalidInputError("invalid email %q", to)
	}

	data, err := s.sampleData(kind, name)
	if err != nil {
		return model.EmailResult{}, err
	}

	res := s.notifier.Send(ctx, kind, addr.Address, data)

	s.logger.Info("Email service: test email sent",
		"caller_id", session.UserID,
		"kind", kind,
		"success", res.Success)

	return res, nil
}

// Preview renders a sample of kind without sending it.
func (s *Emails) Preview(ctx context.Context, session *model.Session, kind model.EmailKind, name string) (model.EmailMessage, error) {
	if err := s.gate.RequireAdmin(ctx, session); err != nil {
		return model.EmailMessage{}, err
	}

	data, err := s.sampleData(kind, name)
	if err != nil {
		return model.EmailMessage{}, err
	}

	msg, err := s.notifier.Preview(kind, data)
	if err != nil {
		return model.EmailMessage{}, fmt.Errorf("failed to render preview: %w", err)
	}

	return msg, nil
}

// Diagnostics reports the email configuration.
func (s *Emails) Diagnostics(ctx context.Context, session *model.Session) (model.EmailDiagnostics, error) {
	if err := s.gate.RequireAdmin(ctx, session); err != nil {
		return model.EmailDiagnostics{}, err
	}
	return s.notifier.Diagnostics(), nil
}

func (s *Emails) sampleData(kind model.EmailKind, name string) (model.EmailData, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Test User"
	}

	switch kind {
	case model.EmailWelcome:
		return model.EmailData{"userName": name}, nil
	case model.EmailNewLogin:
		return model.EmailData{
			"userName":  name,
			"loginTime": s.now().UTC().Format(time.RFC1123),
			"ipAddress": "127.0.0.1",
			"location":  "Test Location",
			"browser":   "Test Device",
		}, nil
	case model.EmailLookoutCompletion:
		return model.EmailData{
			"chatTitle":         "Test Search Query",
			"assistantResponse": "## Summary\n\nThis is a **test** lookout result.\n\n- Finding one\n- Finding two",
			"chatId":            "test-chat-id",
		}, nil
	case model.EmailMagicLink:
		return model.EmailData{"url": s.appURL + "/api/auth/magic-link/verify?token=test-token"}, nil
	default:
		return nil, model.NewInvalidInputError("unknown email type %q", kind)
	}
}
