package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"smartlink/internal/adapter/membus"
	"smartlink/internal/adapter/memory"
	"smartlink/internal/adapter/usecase"
	"smartlink/internal/core/domain"
	"smartlink/internal/core/port"
	"smartlink/internal/core/port/mocks"
	"smartlink/internal/metrics"
)

type fixture struct {
	store    *memory.Store
	bus      *membus.Bus
	counters *mocks.MockCounterStore
	cookies  *ClickCookies
	server   *httptest.Server
	notReady atomic.Bool
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New()

	f := &fixture{
		store:    memory.NewStore(),
		bus:      membus.New(16),
		counters: mocks.NewMockCounterStore(t),
		cookies:  NewClickCookies("test-secret", 7*24*time.Hour, true),
	}
	f.store.PutTenant(domain.Tenant{ID: "t1", Name: "Acme"})
	f.store.PutLink(domain.Link{ID: "l1", TenantID: "t1", CreatorID: "c1", TrackingURL: "https://of.example/c1?src=sl", IsActive: true})
	f.store.PutLink(domain.Link{ID: "l2", TenantID: "t1", CreatorID: "c1", TrackingURL: "https://of.example/c2", IsActive: false})
	f.store.PutLandingPage(domain.LandingPage{ID: "p1", Slug: "summer", LinkID: "l1", Title: "Summer", IsPublished: true})
	f.store.PutLandingPage(domain.LandingPage{ID: "p2", Slug: "gate", LinkID: "l1", Title: "Tap to <continue>", IsPublished: true, Interstitial: true})

	svc := Services{
		Clicks:    usecase.NewClickUseCase(f.store, f.store, logger, m, "/404"),
		Postbacks: usecase.NewPostbackUseCase(f.bus, logger, m),
		Reporting: usecase.NewReportingUseCase(f.store, f.counters),
	}
	checks := []Check{{Name: "db", Ping: func(context.Context) error {
		if f.notReady.Load() {
			return errors.New("connection refused")
		}
		return nil
	}}}
	h := NewHandler(svc, f.cookies, checks, "/404", logger, m)
	f.server = httptest.NewServer(h.Router())
	t.Cleanup(f.server.Close)
	return f
}

func (f *fixture) get(t *testing.T, path string, header http.Header) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, f.server.URL+path, nil)
	require.NoError(t, err)
	for k, v := range header {
		req.Header[k] = v
	}
	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }}
	resp, err := client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestLinkRedirectCarriesClickID(t *testing.T) {
	f := newFixture(t)
	header := http.Header{}
	header.Set("User-Agent", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0) Mobile Safari/604.1")
	header.Set("X-Vercel-IP-Country", "de")

	resp := f.get(t, "/r/l1?utm_source=tiktok&utm_campaign=spring", header)
	require.Equal(t, http.StatusFound, resp.StatusCode)

	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "of.example", loc.Host)
	assert.Equal(t, "sl", loc.Query().Get("src"))
	clickID := loc.Query().Get("ecid")
	require.Len(t, clickID, 22)

	click, err := f.store.GetClick(context.Background(), clickID)
	require.NoError(t, err)
	require.NotNil(t, click)
	assert.Equal(t, "tiktok", click.UTMSource)
	assert.Equal(t, "none", click.UTMMedium)
	assert.Equal(t, "spring", click.UTMCampaign)
	assert.Equal(t, "DE", click.Country)
	assert.Equal(t, "mobile", click.DeviceType)
	assert.Equal(t, "Safari", click.Browser)
}

func TestUnknownAndInactiveLinksGoToNotFound(t *testing.T) {
	f := newFixture(t)
	for _, path := range []string{"/r/missing", "/r/l2", "/go/nope"} {
		resp := f.get(t, path, nil)
		assert.Equal(t, http.StatusFound, resp.StatusCode, path)
		assert.Equal(t, "/404", resp.Header.Get("Location"), path)
	}
}

func TestLandingSetsSignedCookies(t *testing.T) {
	f := newFixture(t)
	resp := f.get(t, "/go/summer", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)

	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)

	cookies := map[string]*http.Cookie{}
	for _, c := range resp.Cookies() {
		cookies[c.Name] = c
	}
	require.Contains(t, cookies, clickCookie)
	require.Contains(t, cookies, destCookie)
	assert.True(t, cookies[clickCookie].HttpOnly)
	assert.True(t, cookies[clickCookie].Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookies[clickCookie].SameSite)
	assert.False(t, cookies[destCookie].HttpOnly)

	claims, err := f.cookies.Parse(cookies[clickCookie].Value)
	require.NoError(t, err)
	assert.Equal(t, loc.Query().Get("ecid"), claims.ClickID)
	assert.Equal(t, "l1", claims.LinkID)

	page, err := f.store.GetLandingPageBySlug(context.Background(), "summer")
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.ViewCount)
}

func TestLandingInterstitial(t *testing.T) {
	f := newFixture(t)
	resp := f.get(t, "/go/gate", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Tap to &lt;continue&gt;")
	assert.Contains(t, string(body), "ecid=")
}

func TestClickCookieRejectsTampering(t *testing.T) {
	c := NewClickCookies("secret", time.Hour, true)
	token, err := c.Sign("cid", "lid")
	require.NoError(t, err)

	_, err = NewClickCookies("other", time.Hour, true).Parse(token)
	assert.Error(t, err)

	c.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = c.Parse(token)
	assert.Error(t, err, "expired")
}

func TestPostbackWebhook(t *testing.T) {
	f := newFixture(t)

	resp := f.get(t, "/webhooks/smart-link?click_id=abc&type=bogus&link_id=l1", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["error"], "type")

	resp = f.get(t, "/webhooks/smart-link?ecid=abc&type=click&link_id=l1&ts=253402300800", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = f.get(t, "/webhooks/smart-link?ecid=abc&type=new_transaction&tx_id=T1&net=19.99&link_id=l1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var ok map[string]bool
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ok))
	assert.True(t, ok["received"])

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	d, err := f.bus.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tx:T1", d.Envelope.ExternalEventKey)
	assert.Equal(t, int64(1999), d.Envelope.AmountNetCents)
}

func TestPostbackPublishFailureIs500(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.bus.Close())

	resp := f.get(t, "/webhooks/smart-link?ecid=abc&type=click&link_id=l1", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestGetRun(t *testing.T) {
	f := newFixture(t)
	resp := f.get(t, "/api/v1/runs/unknown", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	now := time.Now().UTC()
	_, _, err := f.store.CreateOrGetRun(context.Background(), domain.WorkflowRun{
		RunID: "run-1", ExternalEventKey: "tx:1", Payload: json.RawMessage(`{}`), Status: domain.RunRunning, CreatedAt: now, UpdatedAt: now,
	}, []string{"resolve_attribution", "write_conversion"})
	require.NoError(t, err)

	resp = f.get(t, "/api/v1/runs/run-1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var view runView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	assert.Equal(t, "running", view.Status)
	require.Len(t, view.Steps, 2)
	assert.Equal(t, "pending", view.Steps[0].State)
}

func TestDailyStats(t *testing.T) {
	f := newFixture(t)

	resp := f.get(t, "/api/v1/stats/daily", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = f.get(t, "/api/v1/stats/daily?tenant_id=t1&date=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	day := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	f.counters.EXPECT().
		DailyStats(mock.Anything, "t1", day).
		Return(port.DailyStats{TenantID: "t1", Date: "2025-03-04", Conversions: 3, RevenueCents: 4500}, nil).
		Once()

	resp = f.get(t, "/api/v1/stats/daily?tenant_id=t1&date=2025-03-04", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats port.DailyStats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(t, int64(3), stats.Conversions)
	assert.Equal(t, int64(4500), stats.RevenueCents)
}

func TestHealthAndReadiness(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, http.StatusOK, f.get(t, "/healthz", nil).StatusCode)
	assert.Equal(t, http.StatusOK, f.get(t, "/readyz", nil).StatusCode)

	f.notReady.Store(true)
	resp := f.get(t, "/readyz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp = f.get(t, "/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "http_requests_total")
}
