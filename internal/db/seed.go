package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo tenants, links and landing pages for local
// development. Ids are stable (tenant-1, link-1-1, page slug demo-1-1) so
// the redirect routes can be tried by hand; names and urls are random.
// Running it twice is harmless.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	f := gofakeit.New(0)

	for t := 1; t <= 3; t++ {
		tenantID := fmt.Sprintf("tenant-%d", t)
		_, err := db.Exec(ctx, `INSERT INTO tenants (id, name, ad_pixel_id, ad_access_token)
VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`,
			tenantID, f.Company(), "", "")
		if err != nil {
			return fmt.Errorf("seed tenant %s: %w", tenantID, err)
		}

		for l := 1; l <= 3; l++ {
			linkID := fmt.Sprintf("link-%d-%d", t, l)
			creator := strings.ToLower(f.Username())
			tracking := fmt.Sprintf("https://%s/%s", f.DomainName(), creator)
			_, err = db.Exec(ctx, `INSERT INTO links (id, tenant_id, creator_id, name, external_id, tracking_url, postback_url, is_active)
VALUES ($1,$2,$3,$4,$5,$6,'',TRUE) ON CONFLICT DO NOTHING`,
				linkID, tenantID, creator, f.Word()+" campaign", fmt.Sprintf("ext-%d-%d", t, l), tracking)
			if err != nil {
				return fmt.Errorf("seed link %s: %w", linkID, err)
			}

			_, err = db.Exec(ctx, `INSERT INTO landing_pages (id, slug, link_id, title, is_published, interstitial)
VALUES ($1,$2,$3,$4,TRUE,$5) ON CONFLICT DO NOTHING`,
				"page-"+linkID[len("link-"):], fmt.Sprintf("demo-%d-%d", t, l), linkID, f.Company(), l == 3)
			if err != nil {
				return fmt.Errorf("seed landing page for %s: %w", linkID, err)
			}
		}
	}
	return nil
}
