package configs

import "time"

// Click configures click capture. CookieSecret signs the click cookie set
// by the landing page route.
type Click struct {
	CookieSecret string        `env:"COOKIE_SECRET" envDefault:"dev-click-secret"`
	CookieTTL    time.Duration `env:"COOKIE_TTL" envDefault:"168h"`
	CookieSecure bool          `env:"COOKIE_SECURE" envDefault:"true"`
}
