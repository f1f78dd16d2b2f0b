package model

import (
	"context"
	"time"
)

// Email is one outgoing message handed to a delivery provider.
type Email struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// EmailSender delivers emails and returns the provider message id.
type EmailSender interface {
	Send(ctx context.Context, email Email) (string, error)
}

// EmailKind names a transactional email template.
type EmailKind string

const (
	EmailWelcome           EmailKind = "welcome"
	EmailNewLogin          EmailKind = "new-login"
	EmailLookoutCompletion EmailKind = "lookout-completion"
	EmailMagicLink         EmailKind = "magic-link"
)

// EmailKinds lists every known template.
var EmailKinds = []EmailKind{EmailWelcome, EmailNewLogin, EmailLookoutCompletion, EmailMagicLink}

// ParseEmailKind accepts a template name or one of its short aliases ("login", "lookout").
func ParseEmailKind(s string) (EmailKind, bool) {
	switch s {
	case string(EmailWelcome):
		return EmailWelcome, true
	case "login", string(EmailNewLogin):
		return EmailNewLogin, true
	case "lookout", string(EmailLookoutCompletion):
		return EmailLookoutCompletion, true
	case string(EmailMagicLink):
		return EmailMagicLink, true
	default:
		return "", false
	}
}

// EmailData holds the template variables of one email.
type EmailData map[string]string

// EmailResult reports the outcome of a send. Failures are carried here, never as an error.
type EmailResult struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

// EmailMessage is a rendered email.
type EmailMessage struct {
	Kind    EmailKind `json:"kind"`
	From    string    `json:"from"`
	Subject string    `json:"subject"`
	HTML    string    `json:"html"`
}

// EmailDiagnostics describes the notification configuration without exposing secrets.
type EmailDiagnostics struct {
	Configured bool                 `json:"configured"`
	KeyPrefix  string               `json:"keyPrefix,omitempty"`
	KeyLength  int                  `json:"keyLength"`
	Senders    map[EmailKind]string `json:"senders"`
	CheckedAt  time.Time            `json:"checkedAt"`
}

// Notifier formats and dispatches transactional emails.
type Notifier interface {
	Send(ctx context.Context, kind EmailKind, to string, data EmailData) EmailResult
	Preview(kind EmailKind, data EmailData) (EmailMessage, error)
	Diagnostics() EmailDiagnostics
}
