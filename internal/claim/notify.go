package claim

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Notifier delivers administrative alerts raised by the pipeline, e.g. when
// the AI quota runs out mid-month.
type Notifier interface {
	Alert(ctx context.Context, message string) error
}

// WebhookNotifier posts alerts as JSON to a configured endpoint.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

// NewWebhookNotifier creates a WebhookNotifier for the given URL.
func NewWebhookNotifier(url string) (*WebhookNotifier, error) {
	if url == "" {
		return nil, fmt.Errorf("webhook url is required")
	}
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// Alert posts the message to the webhook endpoint.
func (n *WebhookNotifier) Alert(ctx context.Context, message string) error {
	payload, err := json.Marshal(map[string]string{
		"source":  "flightclaim",
		"message": message,
	})
	if err != nil {
		return fmt.Errorf("marshaling alert: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", n.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating alert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("posting alert: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("alert webhook error (status %d): %s", resp.StatusCode, string(body))
	}
	return nil
}

// NopNotifier discards alerts. Used when no webhook is configured.
type NopNotifier struct{}

// Alert does nothing
func (NopNotifier) Alert(ctx context.Context, message string) error { return nil }
