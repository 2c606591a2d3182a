package mailer

import (
	"context"
	"encoding/base64"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"udaansathi-service/internal/domain/entity"
	"udaansathi-service/internal/domain/repository"
	"udaansathi-service/pkg/logger"
)

// GmailMailer sends transactional email through the Gmail API using a
// refresh-token OAuth flow.
type GmailMailer struct {
	service *gmail.Service
	from    string
	logger  logger.Logger
}

// NewGmailMailer creates a new Gmail mailer
func NewGmailMailer(ctx context.Context, tokenSource oauth2.TokenSource, from string, logger logger.Logger) (repository.Mailer, error) {
	service, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, err
	}

	return &GmailMailer{
		service: service,
		from:    from,
		logger:  logger,
	}, nil
}

// Send composes an RFC 822 message and sends it as the authorized user.
func (m *GmailMailer) Send(ctx context.Context, email *entity.OutboundEmail) error {
	raw := fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"MIME-Version: 1.0\r\n"+
		"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
		"\r\n"+
		"%s",
		m.from, email.To, email.Subject, email.HTMLBody)

	message := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(raw)),
	}

	sent, err := m.service.Users.Messages.Send("me", message).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("gmail send: %w", err)
	}

	m.logger.Info("Email sent via Gmail",
		"messageId", sent.Id,
		"to", email.To,
		"subject", email.Subject)

	return nil
}
