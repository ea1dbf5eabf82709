// internal/alert/slack.go
package alert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Notifier delivers alert messages to an external sink. Callers treat
// delivery as fire-and-forget: failures are logged, never retried.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// SlackWebhook posts alert messages to a Slack incoming webhook.
type SlackWebhook struct {
	url  string
	http *http.Client
}

// NewSlackWebhook builds a notifier for the given webhook URL.
func NewSlackWebhook(url string) *SlackWebhook {
	return &SlackWebhook{
		url:  url,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewFromConfig returns the configured notifier, or nil when alerting is
// disabled or no webhook URL is set. A nil Notifier disables alerting.
func NewFromConfig(enabled bool, webhookURL string) Notifier {
	if !enabled || webhookURL == "" {
		return nil
	}
	return NewSlackWebhook(webhookURL)
}

type slackPayload struct {
	Text string `json:"text"`
}

// Notify posts the message as a Slack text payload.
func (s *SlackWebhook) Notify(ctx context.Context, message string) error {
	body, err := json.Marshal(slackPayload{Text: message})
	if err != nil {
		return fmt.Errorf("marshal slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("post to slack: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4*1024))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("slack webhook returned status %d", resp.StatusCode)
	}
	return nil
}
