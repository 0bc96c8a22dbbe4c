package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"smartlink/internal/core/domain"
)

// LinkRepository implements port.LinkRepository and port.TenantRepository
// using pgxpool for PostgreSQL.
type LinkRepository struct {
	pool *pgxpool.Pool
}

// NewLinkRepository returns a new repository instance.
func NewLinkRepository(pool *pgxpool.Pool) *LinkRepository {
	return &LinkRepository{pool: pool}
}

const linkColumns = `id, tenant_id, creator_id, name, COALESCE(external_id, ''), tracking_url, postback_url,
       is_active, total_clicks, total_conversions, total_revenue_cents, created_at, updated_at`

func scanLink(row pgx.Row) (*domain.Link, error) {
	var l domain.Link
	err := row.Scan(&l.ID, &l.TenantID, &l.CreatorID, &l.Name, &l.ExternalID, &l.TrackingURL, &l.PostbackURL,
		&l.IsActive, &l.TotalClicks, &l.TotalConversions, &l.TotalRevenueCents, &l.CreatedAt, &l.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// GetLink returns a link by id.
func (r *LinkRepository) GetLink(ctx context.Context, id string) (*domain.Link, error) {
	return scanLink(r.pool.QueryRow(ctx, `SELECT `+linkColumns+` FROM links WHERE id = $1`, id))
}

// FindLinkByRef matches ref against the link id first and the external id
// second.
func (r *LinkRepository) FindLinkByRef(ctx context.Context, ref string) (*domain.Link, error) {
	return scanLink(r.pool.QueryRow(ctx, `SELECT `+linkColumns+` FROM links
WHERE id = $1 OR external_id = $1
ORDER BY (id = $1) DESC
LIMIT 1`, ref))
}

// GetLandingPageBySlug returns a landing page by slug.
func (r *LinkRepository) GetLandingPageBySlug(ctx context.Context, slug string) (*domain.LandingPage, error) {
	var p domain.LandingPage
	err := r.pool.QueryRow(ctx, `SELECT id, slug, link_id, title, is_published, interstitial, view_count
FROM landing_pages WHERE slug = $1`, slug).
		Scan(&p.ID, &p.Slug, &p.LinkID, &p.Title, &p.IsPublished, &p.Interstitial, &p.ViewCount)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *LinkRepository) IncrementLandingPageViews(ctx context.Context, pageID string) error {
	_, err := r.pool.Exec(ctx, `UPDATE landing_pages SET view_count = view_count + 1 WHERE id = $1`, pageID)
	return err
}

func (r *LinkRepository) IncrementLinkClicks(ctx context.Context, linkID string) error {
	_, err := r.pool.Exec(ctx, `UPDATE links SET total_clicks = total_clicks + 1, updated_at = now() WHERE id = $1`, linkID)
	return err
}

func (r *LinkRepository) AddConversionTotals(ctx context.Context, linkID string, revenueCents int64) error {
	_, err := r.pool.Exec(ctx, `UPDATE links
SET total_conversions = total_conversions + 1,
    total_revenue_cents = total_revenue_cents + $2,
    updated_at = now()
WHERE id = $1`, linkID, revenueCents)
	return err
}

// GetTenant returns a tenant by id.
func (r *LinkRepository) GetTenant(ctx context.Context, id string) (*domain.Tenant, error) {
	var t domain.Tenant
	err := r.pool.QueryRow(ctx, `SELECT id, name, ad_pixel_id, ad_access_token, alert_threshold_cents, created_at
FROM tenants WHERE id = $1`, id).
		Scan(&t.ID, &t.Name, &t.AdPixelID, &t.AdAccessToken, &t.AlertThresholdCents, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
