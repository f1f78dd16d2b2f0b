package notify

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/dtroode/adminpanel-server/internal/model"
)

type emailsAPI interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendSender delivers emails through the Resend API.
type ResendSender struct {
	emails emailsAPI
}

var _ model.EmailSender = (*ResendSender)(nil)

func NewResendSender(apiKey string) *ResendSender {
	client := resend.NewClient(apiKey)
	return &ResendSender{emails: client.Emails}
}

func (s *ResendSender) Send(ctx context.Context, email model.Email) (string, error) {
	resp, err := s.emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    email.From,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrNotificationFailed, err)
	}
	return resp.Id, nil
}
