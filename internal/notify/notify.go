// Package notify renders and dispatches the product's transactional emails.
package notify

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/mail"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"

	"github.com/dtroode/adminpanel-server/internal/logger"
	"github.com/dtroode/adminpanel-server/internal/model"
)

// ErrNotConfigured is reported in the result of a send when no provider is set up.
const ErrNotConfigured = "email service not configured"

//go:embed catalog.yaml templates/*.html
var assets embed.FS

type entry struct {
	Sender     string   `yaml:"sender"`
	SenderName string   `yaml:"senderName"`
	Subject    string   `yaml:"subject"`
	Required   []string `yaml:"required"`
}

type catalog struct {
	Templates map[model.EmailKind]entry `yaml:"templates"`
}

type compiled struct {
	entry
	senderName *texttemplate.Template
	subject    *texttemplate.Template
	body       *template.Template
}

// Options configures the Service.
type Options struct {
	APIKey    string
	AppURL    string
	BrandName string
}

// Service implements model.Notifier.
type Service struct {
	sender    model.EmailSender
	templates map[model.EmailKind]compiled
	opts      Options
	now       func() time.Time
	logger    *logger.Logger
}

var _ model.Notifier = (*Service)(nil)

// New loads the embedded catalog. sender may be nil, in which case every send reports
// ErrNotConfigured.
func New(opts Options, sender model.EmailSender, logger *logger.Logger) (*Service, error) {
	raw, err := assets.ReadFile("catalog.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read email catalog: %w", err)
	}

	var cat catalog
	if err := yaml.Unmarshal(raw, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse email catalog: %w", err)
	}

	templates := make(map[model.EmailKind]compiled, len(model.EmailKinds))
	for _, kind := range model.EmailKinds {
		e, ok := cat.Templates[kind]
		if !ok {
			return nil, fmt.Errorf("email catalog has no entry for %s", kind)
		}
		c, err := compile(kind, e)
		if err != nil {
			return nil, err
		}
		templates[kind] = c
	}

	opts.AppURL = strings.TrimRight(opts.AppURL, "/")

	return &Service{
		sender:    sender,
		templates: templates,
		opts:      opts,
		now:       time.Now,
		logger:    logger,
	}, nil
}

func compile(kind model.EmailKind, e entry) (compiled, error) {
	name, err := texttemplate.New("senderName").Parse(e.SenderName)
	if err != nil {
		return compiled{}, fmt.Errorf("failed to parse sender name of %s: %w", kind, err)
	}
	subject, err := texttemplate.New("subject").Parse(e.Subject)
	if err != nil {
		return compiled{}, fmt.Errorf("failed to parse subject of %s: %w", kind, err)
	}
	body, err := template.New(string(kind)).ParseFS(assets, "templates/layout.html", "templates/"+string(kind)+".html")
	if err != nil {
		return compiled{}, fmt.Errorf("failed to parse body of %s: %w", kind, err)
	}
	return compiled{entry: e, senderName: name, subject: subject, body: body}, nil
}

type view struct {
	Brand  string
	AppURL string
	Year   int
	Data   model.EmailData
	Body   template.HTML
}

// Preview renders kind with data without sending it.
func (s *Service) Preview(kind model.EmailKind, data model.EmailData) (model.EmailMessage, error) {
	c, ok := s.templates[kind]
	if !ok {
		return model.EmailMessage{}, model.NewInvalidInputError("unknown email type %q", kind)
	}
	for _, field := range c.Required {
		if strings.TrimSpace(data[field]) == "" {
			return model.EmailMessage{}, model.NewInvalidInputError("%s requires %s", kind, field)
		}
	}

	v := view{
		Brand:  s.opts.BrandName,
		AppURL: s.opts.AppURL,
		Year:   s.now().Year(),
		Data:   data,
	}
	if md, ok := data["assistantResponse"]; ok && kind == model.EmailLookoutCompletion {
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(md), &buf); err != nil {
			s.logger.Error("Notify: failed to convert markdown", "error", err.Error())
			buf.Reset()
			buf.WriteString("<p>Failed to render lookout results.</p>")
		}
		v.Body = template.HTML(buf.String())
	}

	var name, subject, body strings.Builder
	if err := c.senderName.Execute(&name, v); err != nil {
		return model.EmailMessage{}, fmt.Errorf("failed to render sender of %s: %w", kind, err)
	}
	if err := c.subject.Execute(&subject, v); err != nil {
		return model.EmailMessage{}, fmt.Errorf("failed to render subject of %s: %w", kind, err)
	}
	if err := c.body.ExecuteTemplate(&body, "layout", v); err != nil {
		return model.EmailMessage{}, fmt.Errorf("failed to render body of %s: %w", kind, err)
	}

	from := mail.Address{Name: name.String(), Address: c.Sender}

	return model.EmailMessage{
		Kind:    kind,
		From:    from.String(),
		Subject: subject.String(),
		HTML:    body.String(),
	}, nil
}

// Send renders and dispatches kind to one recipient. It never fails: problems are reported
// in the result and logged.
func (s *Service) Send(ctx context.Context, kind model.EmailKind, to string, data model.EmailData) model.EmailResult {
	if s.sender == nil {
		s.logger.Warn("Notify: email service not configured, email not sent",
			"kind", kind)
		return model.EmailResult{Error: ErrNotConfigured}
	}

	msg, err := s.Preview(kind, data)
	if err != nil {
		s.logger.Error("Notify: failed to render email",
			"kind", kind,
			"error", err.Error())
		return model.EmailResult{Error: err.Error()}
	}

	id, err := s.sender.Send(ctx, model.Email{
		From:    msg.From,
		To:      []string{to},
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if err != nil {
		s.logger.Error("Notify: failed to send email",
			"kind", kind,
			"error", err.Error())
		return model.EmailResult{Error: err.Error()}
	}

	s.logger.Info("Notify: email sent",
		"kind", kind,
		"id", id)

	return model.EmailResult{Success: true, ID: id}
}

// Diagnostics reports whether a provider key is set, without revealing it.
func (s *Service) Diagnostics() model.EmailDiagnostics {
	d := model.EmailDiagnostics{
		Configured: s.opts.APIKey != "",
		KeyLength:  len(s.opts.APIKey),
		Senders:    make(map[model.EmailKind]string, len(s.templates)),
		CheckedAt:  s.now().UTC(),
	}
	if d.Configured {
		prefix := s.opts.APIKey
		if len(prefix) > 6 {
			prefix = prefix[:6]
		}
		d.KeyPrefix = prefix + "..."
	}
	for kind, c := range s.templates {
		d.Senders[kind] = c.Sender
	}
	return d
}
