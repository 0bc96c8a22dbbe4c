// Package notify holds the outbound HTTP clients used by the fan-out steps.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"smartlink/internal/core/port"
)

// StatusError is returned when a remote endpoint answers with a non-2xx
// status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}

// AdPlatformClient posts server-side conversion events to a Graph style
// conversions endpoint: POST {base}/{pixel_id}/events.
type AdPlatformClient struct {
	baseURL    string
	currency   string
	httpClient *http.Client
}

func NewAdPlatformClient(baseURL, currency string, timeout time.Duration) *AdPlatformClient {
	return &AdPlatformClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		currency:   currency,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type adEventPayload struct {
	Data []adEvent `json:"data"`
}

type adEvent struct {
	EventName    string        `json:"event_name"`
	EventTime    int64         `json:"event_time"`
	EventID      string        `json:"event_id"`
	ActionSource string        `json:"action_source"`
	UserData     adUserData    `json:"user_data"`
	CustomData   *adCustomData `json:"custom_data,omitempty"`
}

type adUserData struct {
	ExternalID []string `json:"external_id,omitempty"`
}

type adCustomData struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

func (c *AdPlatformClient) SendConversion(ctx context.Context, ev port.AdPlatformEvent) error {
	event := adEvent{
		EventName:    ev.EventName,
		EventTime:    ev.EventTime.Unix(),
		EventID:      ev.EventID,
		ActionSource: "website",
	}
	if ev.ExternalID != "" {
		event.UserData.ExternalID = []string{ev.ExternalID}
	}
	if ev.ValueCents > 0 {
		event.CustomData = &adCustomData{Value: float64(ev.ValueCents) / 100, Currency: c.currency}
	}
	payload, err := json.Marshal(adEventPayload{Data: []adEvent{event}})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/events?access_token=%s",
		c.baseURL, url.PathEscape(ev.PixelID), url.QueryEscape(ev.AccessToken))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The URL carries the access token.
		return fmt.Errorf("ad platform request failed: %w", redactURLError(err))
	}
	defer resp.Body.Close()
	return checkStatus(resp)
}

func redactURLError(err error) error {
	if uerr, ok := err.(*url.Error); ok {
		return uerr.Err
	}
	return err
}
