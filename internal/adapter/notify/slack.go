package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type slackMessage struct {
	Text string `json:"text"`
}

// SlackNotifier posts alerts to an incoming webhook. It is disabled when
// no webhook URL is configured.
type SlackNotifier struct {
	webhookURL string
	httpClient *http.Client
}

func NewSlackNotifier(webhookURL string, timeout time.Duration) *SlackNotifier {
	return &SlackNotifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (n *SlackNotifier) Enabled() bool {
	return n.webhookURL != ""
}

func (n *SlackNotifier) Notify(ctx context.Context, text string) error {
	if !n.Enabled() {
		return fmt.Errorf("slack webhook URL not configured")
	}
	payload, err := json.Marshal(slackMessage{Text: text})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("slack request failed: %w", err)
	}
	defer resp.Body.Close()
	return checkStatus(resp)
}
