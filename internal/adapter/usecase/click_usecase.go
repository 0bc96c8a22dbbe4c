package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"smartlink/internal/core/domain"
	"smartlink/internal/core/port"
	"smartlink/internal/metrics"
)

// ClickParam is the query parameter carrying the click id to the traffic
// source, which echoes it back in postbacks as ecid.
const ClickParam = "ecid"

// ClickUseCase records clicks on smart links and landing pages and builds
// the redirect that carries the click id forward. It implements
// port.ClickUseCase.
type ClickUseCase struct {
	links   port.LinkRepository
	clicks  port.ClickRepository
	logger  *slog.Logger
	metrics *metrics.Metrics

	notFoundURL string
	newID       func() (string, error)
	now         func() time.Time
}

// NewClickUseCase creates a click use case. Visitors of unknown links are
// sent to notFoundURL.
func NewClickUseCase(links port.LinkRepository, clicks port.ClickRepository, logger *slog.Logger, m *metrics.Metrics, notFoundURL string) *ClickUseCase {
	return &ClickUseCase{
		links:       links,
		clicks:      clicks,
		logger:      logger,
		metrics:     m,
		notFoundURL: notFoundURL,
		newID:       NewClickID,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// CaptureLink resolves an active link by id, records the click and returns
// a redirect to the link's tracking URL with the click id appended. Unknown
// or inactive links return port.ErrLinkNotFound together with a redirect
// to the not-found destination.
func (u *ClickUseCase) CaptureLink(ctx context.Context, linkID string, rc domain.RequestContext) (domain.Redirect, error) {
	link, err := u.resolveLink(ctx, linkID)
	if err != nil {
		return u.notFound(), err
	}
	red, err := u.capture(ctx, link, nil, rc)
	if err != nil {
		return u.notFound(), err
	}
	u.metrics.ClicksCaptured.WithLabelValues("link").Inc()
	return red, nil
}

// CaptureLanding resolves a published landing page by slug and records
// the click against its link. The landing page view counter is bumped on
// every capture. When the page is an interstitial the returned redirect
// carries the page so the caller can render it.
func (u *ClickUseCase) CaptureLanding(ctx context.Context, slug string, rc domain.RequestContext) (domain.Redirect, error) {
	page, err := u.links.GetLandingPageBySlug(ctx, slug)
	if err != nil {
		return u.notFound(), fmt.Errorf("get landing page %q: %w", slug, err)
	}
	if page == nil || !page.IsPublished {
		u.metrics.LandingPageNotFound.Inc()
		return u.notFound(), port.ErrLinkNotFound
	}
	link, err := u.resolveLink(ctx, page.LinkID)
	if err != nil {
		return u.notFound(), err
	}

	red, err := u.capture(ctx, link, &page.ID, rc)
	if err != nil {
		return u.notFound(), err
	}
	if err = u.links.IncrementLandingPageViews(ctx, page.ID); err != nil {
		u.logger.Warn("landing page view increment failed",
			slog.String("landing_page_id", page.ID), slog.Any("error", err))
	}
	if page.Interstitial {
		red.Interstitial = page
	}
	u.metrics.ClicksCaptured.WithLabelValues("landing").Inc()
	return red, nil
}

func (u *ClickUseCase) resolveLink(ctx context.Context, linkID string) (*domain.Link, error) {
	link, err := u.links.GetLink(ctx, linkID)
	if err != nil {
		return nil, fmt.Errorf("get link %q: %w", linkID, err)
	}
	if link == nil || !link.IsActive {
		u.metrics.LinkNotFound.Inc()
		return nil, port.ErrLinkNotFound
	}
	return link, nil
}

// capture mints the click id, builds the destination and stores the click.
// Storage failures are logged and swallowed: a lost click is preferred over
// a broken redirect.
func (u *ClickUseCase) capture(ctx context.Context, link *domain.Link, pageID *string, rc domain.RequestContext) (domain.Redirect, error) {
	dest, err := url.Parse(link.TrackingURL)
	if err != nil {
		return domain.Redirect{}, fmt.Errorf("parse tracking url of link %q: %w", link.ID, err)
	}

	clickID, err := u.newID()
	if err != nil {
		u.logger.Error("click id generation failed", slog.String("link_id", link.ID), slog.Any("error", err))
		u.metrics.ClickCaptureFailed.Inc()
		return domain.Redirect{URL: dest.String(), LinkID: link.ID}, nil
	}
	q := dest.Query()
	q.Set(ClickParam, clickID)
	dest.RawQuery = q.Encode()

	click := &domain.Click{
		ClickID:       clickID,
		TenantID:      link.TenantID,
		LinkID:        link.ID,
		LandingPageID: pageID,
		UTMSource:     queryOr(rc.Query, "utm_source", "direct"),
		UTMMedium:     queryOr(rc.Query, "utm_medium", "none"),
		UTMCampaign:   rc.Query["utm_campaign"],
		UTMContent:    rc.Query["utm_content"],
		Country:       orDefault(rc.Country, "unknown"),
		DeviceType:    DeviceType(rc.UserAgent),
		Browser:       Browser(rc.UserAgent),
		Referrer:      rc.Referrer,
		CreatedAt:     u.now(),
	}
	if err = u.clicks.CreateClick(ctx, click); err != nil {
		u.logger.Error("click capture failed, redirecting without record",
			slog.String("click_id", clickID),
			slog.String("link_id", link.ID),
			slog.String("tenant_id", link.TenantID),
			slog.Any("error", err))
		u.metrics.ClickCaptureFailed.Inc()
	} else if err = u.links.IncrementLinkClicks(ctx, link.ID); err != nil {
		u.logger.Warn("link click counter increment failed", slog.String("link_id", link.ID), slog.Any("error", err))
	}

	return domain.Redirect{URL: dest.String(), ClickID: clickID, LinkID: link.ID}, nil
}

func (u *ClickUseCase) notFound() domain.Redirect {
	return domain.Redirect{URL: u.notFoundURL}
}

func queryOr(q map[string]string, key, def string) string {
	return orDefault(q[key], def)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
