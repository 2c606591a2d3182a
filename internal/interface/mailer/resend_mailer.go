package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"udaansathi-service/internal/domain/entity"
	"udaansathi-service/internal/domain/repository"
	"udaansathi-service/pkg/logger"
)

// ResendMailer sends transactional email through a Resend-compatible HTTP
// API with an API key.
type ResendMailer struct {
	logger  logger.Logger
	baseURL string
	apiKey  string
	from    string
	client  *http.Client
}

// NewResendMailer creates a new API-key mailer
func NewResendMailer(baseURL, apiKey, from string, timeout time.Duration, logger logger.Logger) repository.Mailer {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &ResendMailer{
		logger:  logger,
		baseURL: baseURL,
		apiKey:  apiKey,
		from:    from,
		client:  &http.Client{Timeout: timeout},
	}
}

type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Send posts one email to the provider. The call blocks until the provider
// answers or the client timeout expires.
func (m *ResendMailer) Send(ctx context.Context, email *entity.OutboundEmail) error {
	body := sendEmailRequest{
		From:    m.from,
		To:      []string{email.To},
		Subject: email.Subject,
		HTML:    email.HTMLBody,
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal email: %w", err)
	}

	url := fmt.Sprintf("%s/emails", m.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var errorBody map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errorBody)
		return fmt.Errorf("mail provider returned status %d: %v", resp.StatusCode, errorBody)
	}

	var response struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	m.logger.Info("Email accepted by provider",
		"id", response.ID,
		"to", email.To,
		"subject", email.Subject)

	return nil
}
