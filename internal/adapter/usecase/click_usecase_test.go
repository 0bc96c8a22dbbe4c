package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"smartlink/internal/core/domain"
	"smartlink/internal/core/port"
	"smartlink/internal/core/port/mocks"
	"smartlink/internal/metrics"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func activeLink() *domain.Link {
	return &domain.Link{
		ID:          "link_1",
		TenantID:    "tenant_1",
		CreatorID:   "creator_1",
		TrackingURL: "https://onlyfans.example/creator?c=spring",
		IsActive:    true,
	}
}

func newClickUseCase(t *testing.T) (*ClickUseCase, *mocks.MockLinkRepository, *mocks.MockClickRepository) {
	links := mocks.NewMockLinkRepository(t)
	clicks := mocks.NewMockClickRepository(t)
	u := NewClickUseCase(links, clicks, discardLogger(), metrics.New(), "/404")
	u.newID = func() (string, error) { return "click_abc", nil }
	return u, links, clicks
}

func TestCaptureLinkRedirectsWithClickID(t *testing.T) {
	u, links, clicks := newClickUseCase(t)
	ctx := context.Background()

	links.EXPECT().GetLink(mock.Anything, "link_1").Return(activeLink(), nil)
	var stored *domain.Click
	clicks.EXPECT().CreateClick(mock.Anything, mock.AnythingOfType("*domain.Click")).
		Run(func(_ context.Context, c *domain.Click) { stored = c }).
		Return(nil)
	links.EXPECT().IncrementLinkClicks(mock.Anything, "link_1").Return(nil)

	red, err := u.CaptureLink(ctx, "link_1", domain.RequestContext{
		UserAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0) Mobile Safari",
		Query:     map[string]string{"utm_campaign": "spring"},
	})
	require.NoError(t, err)

	dest, err := url.Parse(red.URL)
	require.NoError(t, err)
	assert.Equal(t, "click_abc", dest.Query().Get(ClickParam))
	assert.Equal(t, "spring", dest.Query().Get("c"))
	assert.Equal(t, "click_abc", red.ClickID)
	assert.Nil(t, red.Interstitial)

	require.NotNil(t, stored)
	assert.Equal(t, "tenant_1", stored.TenantID)
	assert.Equal(t, "direct", stored.UTMSource)
	assert.Equal(t, "none", stored.UTMMedium)
	assert.Equal(t, "spring", stored.UTMCampaign)
	assert.Equal(t, "unknown", stored.Country)
	assert.Equal(t, "mobile", stored.DeviceType)
	assert.Equal(t, "Safari", stored.Browser)
	assert.Nil(t, stored.LandingPageID)
}

func TestCaptureLinkUnknownOrInactive(t *testing.T) {
	u, links, _ := newClickUseCase(t)

	links.EXPECT().GetLink(mock.Anything, "missing").Return(nil, nil)
	inactive := activeLink()
	inactive.IsActive = false
	links.EXPECT().GetLink(mock.Anything, "link_1").Return(inactive, nil)

	for _, id := range []string{"missing", "link_1"} {
		red, err := u.CaptureLink(context.Background(), id, domain.RequestContext{})
		require.ErrorIs(t, err, port.ErrLinkNotFound)
		assert.Equal(t, "/404", red.URL)
		assert.Empty(t, red.ClickID)
	}
}

func TestNotFoundMetricsSeparateLinksFromSlugs(t *testing.T) {
	links := mocks.NewMockLinkRepository(t)
	m := metrics.New()
	u := NewClickUseCase(links, mocks.NewMockClickRepository(t), discardLogger(), m, "/404")

	links.EXPECT().GetLink(mock.Anything, "missing").Return(nil, nil)
	links.EXPECT().GetLandingPageBySlug(mock.Anything, "gone").Return(nil, nil)
	links.EXPECT().GetLandingPageBySlug(mock.Anything, "orphan").
		Return(&domain.LandingPage{ID: "lp_3", LinkID: "missing", IsPublished: true}, nil)

	_, err := u.CaptureLink(context.Background(), "missing", domain.RequestContext{})
	require.ErrorIs(t, err, port.ErrLinkNotFound)
	_, err = u.CaptureLanding(context.Background(), "gone", domain.RequestContext{})
	require.ErrorIs(t, err, port.ErrLinkNotFound)
	_, err = u.CaptureLanding(context.Background(), "orphan", domain.RequestContext{})
	require.ErrorIs(t, err, port.ErrLinkNotFound)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	assert.Contains(t, body, "clicks_link_not_found_total 2")
	assert.Contains(t, body, "clicks_landing_page_not_found_total 1")
}

func TestCaptureLinkStillRedirectsWhenStoreFails(t *testing.T) {
	u, links, clicks := newClickUseCase(t)

	links.EXPECT().GetLink(mock.Anything, "link_1").Return(activeLink(), nil)
	clicks.EXPECT().CreateClick(mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	red, err := u.CaptureLink(context.Background(), "link_1", domain.RequestContext{})
	require.NoError(t, err)
	assert.Contains(t, red.URL, "ecid=click_abc")
	links.AssertNotCalled(t, "IncrementLinkClicks", mock.Anything, mock.Anything)
}

func TestCaptureLandingCountsViewAndReturnsInterstitial(t *testing.T) {
	u, links, clicks := newClickUseCase(t)

	page := &domain.LandingPage{ID: "lp_1", Slug: "spring", LinkID: "link_1", IsPublished: true, Interstitial: true}
	links.EXPECT().GetLandingPageBySlug(mock.Anything, "spring").Return(page, nil)
	links.EXPECT().GetLink(mock.Anything, "link_1").Return(activeLink(), nil)
	clicks.EXPECT().CreateClick(mock.Anything, mock.MatchedBy(func(c *domain.Click) bool {
		return c.LandingPageID != nil && *c.LandingPageID == "lp_1" && c.Country == "DE"
	})).Return(nil)
	links.EXPECT().IncrementLinkClicks(mock.Anything, "link_1").Return(nil)
	links.EXPECT().IncrementLandingPageViews(mock.Anything, "lp_1").Return(nil)

	red, err := u.CaptureLanding(context.Background(), "spring", domain.RequestContext{Country: "DE"})
	require.NoError(t, err)
	assert.Equal(t, page, red.Interstitial)
	assert.Equal(t, "link_1", red.LinkID)
}

func TestCaptureLandingUnpublished(t *testing.T) {
	u, links, _ := newClickUseCase(t)

	links.EXPECT().GetLandingPageBySlug(mock.Anything, "draft").
		Return(&domain.LandingPage{ID: "lp_2", LinkID: "link_1"}, nil)

	red, err := u.CaptureLanding(context.Background(), "draft", domain.RequestContext{})
	require.ErrorIs(t, err, port.ErrLinkNotFound)
	assert.Equal(t, "/404", red.URL)
}

func TestClickIDsAreUnique(t *testing.T) {
	if testing.Short() {
		t.Skip("generates a million ids")
	}
	const n = 1_000_000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id, err := NewClickID()
		require.NoError(t, err)
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate click id %q after %d samples", id, i)
		}
		seen[id] = struct{}{}
	}
}

func TestClickIDShape(t *testing.T) {
	id, err := NewClickID()
	require.NoError(t, err)
	assert.Len(t, id, 22)
	assert.Regexp(t, `^[A-Za-z0-9_-]+$`, id)
}

func TestUserAgentClassification(t *testing.T) {
	cases := []struct {
		ua, device, browser string
	}{
		{"Mozilla/5.0 (Linux; Android 14) Chrome/120 Mobile Safari/537.36", "mobile", "Chrome"},
		{"Mozilla/5.0 (iPad; CPU OS 17_0) AppleWebKit Safari/604.1", "tablet", "Safari"},
		{"Mozilla/5.0 (Windows NT 10.0; rv:121.0) Gecko Firefox/121.0", "desktop", "Firefox"},
		{"Mozilla/5.0 (Windows NT 10.0) Edge/18.19045", "desktop", "Edge"},
		{"curl/8.4.0", "desktop", "Other"},
		{"", "desktop", "Other"},
	}
	for _, c := range cases {
		assert.Equal(t, c.device, DeviceType(c.ua), c.ua)
		assert.Equal(t, c.browser, Browser(c.ua), c.ua)
	}
}
