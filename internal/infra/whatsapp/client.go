// internal/infra/whatsapp/client.go
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// WebhookSender posts rendered message bodies to a WhatsApp gateway webhook.
// The gateway owns delivery, retries and session state; this side only
// reports whether the handoff succeeded.
type WebhookSender struct {
	url   string
	token string
	http  *http.Client
}

func NewWebhookSender(url string, token string) *WebhookSender {
	return &WebhookSender{
		url:   strings.TrimSpace(url),
		token: strings.TrimSpace(token),
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SendText delivers body to the given phone number through the gateway.
func (s *WebhookSender) SendText(ctx context.Context, phone string, body string) error {
	if s.url == "" {
		return errors.New("whatsapp webhook url not configured")
	}
	if phone == "" {
		return errors.New("recipient phone number is empty")
	}
	payload := map[string]string{
		"to":   phone,
		"body": body,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("whatsapp webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// NoopSender swallows every message. Used when no gateway is configured so
// the email channel still runs.
type NoopSender struct{}

func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

func (s *NoopSender) SendText(_ context.Context, _ string, _ string) error {
	return nil
}
