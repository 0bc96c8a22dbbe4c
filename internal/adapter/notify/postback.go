package notify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"smartlink/internal/core/port"
)

// PostbackClient fires GET requests at tenant postback URLs. Each target
// host gets its own token bucket so one slow tracker cannot be flooded by
// a burst of conversions.
type PostbackClient struct {
	httpClient *http.Client
	limit      rate.Limit
	burst      int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func NewPostbackClient(timeout time.Duration, perHost float64, burst int) *PostbackClient {
	if burst < 1 {
		burst = 1
	}
	return &PostbackClient{
		httpClient: &http.Client{Timeout: timeout},
		limit:      rate.Limit(perHost),
		burst:      burst,
		limiters:   make(map[string]*rate.Limiter),
	}
}

func (c *PostbackClient) limiter(host string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	l, ok := c.limiters[host]
	if !ok {
		l = rate.NewLimiter(c.limit, c.burst)
		c.limiters[host] = l
	}
	return l
}

// Fire requests rawURL once. URLs that cannot be requested are reported as
// port.ErrInvalidPostbackURL.
func (c *PostbackClient) Fire(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w %q", port.ErrInvalidPostbackURL, rawURL)
	}
	if err = c.limiter(u.Host).Wait(ctx); err != nil {
		return fmt.Errorf("postback rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("postback request failed: %w", err)
	}
	defer resp.Body.Close()
	return checkStatus(resp)
}
