package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"smartlink/internal/core/domain"
)

// ConversionRepository implements port.ClickRepository and
// port.ConversionRepository.
type ConversionRepository struct {
	pool *pgxpool.Pool
}

func NewConversionRepository(pool *pgxpool.Pool) *ConversionRepository {
	return &ConversionRepository{pool: pool}
}

// CreateClick inserts an immutable click row.
func (r *ConversionRepository) CreateClick(ctx context.Context, c *domain.Click) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO clicks
(click_id, tenant_id, link_id, landing_page_id, utm_source, utm_medium, utm_campaign, utm_content,
 country, device_type, browser, referrer, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		c.ClickID, c.TenantID, c.LinkID, c.LandingPageID, c.UTMSource, c.UTMMedium, c.UTMCampaign, c.UTMContent,
		c.Country, c.DeviceType, c.Browser, c.Referrer, c.CreatedAt)
	return err
}

func (r *ConversionRepository) GetClick(ctx context.Context, clickID string) (*domain.Click, error) {
	var c domain.Click
	err := r.pool.QueryRow(ctx, `SELECT click_id, tenant_id, link_id, landing_page_id, utm_source, utm_medium,
       utm_campaign, utm_content, country, device_type, browser, referrer, created_at
FROM clicks WHERE click_id = $1`, clickID).
		Scan(&c.ClickID, &c.TenantID, &c.LinkID, &c.LandingPageID, &c.UTMSource, &c.UTMMedium,
			&c.UTMCampaign, &c.UTMContent, &c.Country, &c.DeviceType, &c.Browser, &c.Referrer, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

const conversionColumns = `id, tenant_id, creator_id, link_id, click_id, external_event_key, event_type, transaction_type,
       amount_gross_cents, amount_net_cents, fan_identifier, fan_username, occurred_at, created_at`

func scanConversion(row pgx.Row) (domain.Conversion, error) {
	var (
		c         domain.Conversion
		eventType string
	)
	err := row.Scan(&c.ID, &c.TenantID, &c.CreatorID, &c.LinkID, &c.ClickID, &c.ExternalEventKey, &eventType,
		&c.TransactionType, &c.AmountGrossCents, &c.AmountNetCents, &c.FanIdentifier, &c.FanUsername,
		&c.OccurredAt, &c.CreatedAt)
	c.EventType = domain.EventType(eventType)
	return c, err
}

// InsertOrGetConversion relies on the (tenant_id, external_event_key)
// unique constraint. When the insert is a no-op the existing row is read
// back; the loop covers the window where a concurrent insert has not yet
// committed.
func (r *ConversionRepository) InsertOrGetConversion(ctx context.Context, c domain.Conversion) (domain.Conversion, bool, error) {
	for {
		inserted, err := scanConversion(r.pool.QueryRow(ctx, `INSERT INTO conversions
(id, tenant_id, creator_id, link_id, click_id, external_event_key, event_type, transaction_type,
 amount_gross_cents, amount_net_cents, fan_identifier, fan_username, occurred_at, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,now())
ON CONFLICT (tenant_id, external_event_key) DO NOTHING
RETURNING `+conversionColumns,
			c.ID, c.TenantID, c.CreatorID, c.LinkID, c.ClickID, c.ExternalEventKey, string(c.EventType), c.TransactionType,
			c.AmountGrossCents, c.AmountNetCents, c.FanIdentifier, c.FanUsername, c.OccurredAt))
		if err == nil {
			return inserted, true, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return domain.Conversion{}, false, err
		}

		existing, err := scanConversion(r.pool.QueryRow(ctx, `SELECT `+conversionColumns+`
FROM conversions WHERE tenant_id = $1 AND external_event_key = $2`, c.TenantID, c.ExternalEventKey))
		if err == nil {
			return existing, false, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return domain.Conversion{}, false, err
		}
		if err = ctx.Err(); err != nil {
			return domain.Conversion{}, false, err
		}
	}
}

func (r *ConversionRepository) GetConversion(ctx context.Context, id string) (*domain.Conversion, error) {
	c, err := scanConversion(r.pool.QueryRow(ctx, `SELECT `+conversionColumns+` FROM conversions WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// SetSideEffectStatus upserts the adapter outcome unless it is already
// recorded as sent.
func (r *ConversionRepository) SetSideEffectStatus(ctx context.Context, conversionID, adapter string, status domain.SideEffectStatus, detail string) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO conversion_side_effects (conversion_id, adapter, status, detail, updated_at)
VALUES ($1,$2,$3,$4,now())
ON CONFLICT (conversion_id, adapter) DO UPDATE
SET status = EXCLUDED.status, detail = EXCLUDED.detail, updated_at = now()
WHERE conversion_side_effects.status <> 'sent'`, conversionID, adapter, string(status), detail)
	return err
}

func (r *ConversionRepository) SideEffectStatuses(ctx context.Context, conversionID string) (map[string]domain.SideEffectStatus, error) {
	rows, err := r.pool.Query(ctx, `SELECT adapter, status FROM conversion_side_effects WHERE conversion_id = $1`, conversionID)
	if err != nil {
		return nil, err
	}
	var adapter, status string
	out := make(map[string]domain.SideEffectStatus)
	_, err = pgx.ForEachRow(rows, []any{&adapter, &status}, func() error {
		out[adapter] = domain.SideEffectStatus(status)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
