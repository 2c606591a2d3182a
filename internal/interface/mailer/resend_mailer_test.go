package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"udaansathi-service/internal/domain/entity"
	"udaansathi-service/pkg/logger"
)

func TestResendMailerSend(t *testing.T) {
	var got sendEmailRequest
	var auth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"id": "email-1"})
	}))
	defer server.Close()

	m := NewResendMailer(server.URL, "test-key", "Udaan Sathi <alerts@udaansathi.in>", 5*time.Second, logger.NewNop())
	err := m.Send(context.Background(), &entity.OutboundEmail{
		To:       "asha@example.com",
		Subject:  "Flight 6E213 cancelled",
		HTMLBody: "<p>Cancelled</p>",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", auth)
	assert.Equal(t, []string{"asha@example.com"}, got.To)
	assert.Equal(t, "Flight 6E213 cancelled", got.Subject)
	assert.Equal(t, "Udaan Sathi <alerts@udaansathi.in>", got.From)
}

func TestResendMailerProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"message": "invalid recipient"})
	}))
	defer server.Close()

	m := NewResendMailer(server.URL, "test-key", "alerts@udaansathi.in", 5*time.Second, logger.NewNop())
	err := m.Send(context.Background(), &entity.OutboundEmail{To: "bad", Subject: "x", HTMLBody: "y"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}
