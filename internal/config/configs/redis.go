package configs

import "time"

// Redis configures the counter store. Addr accepts either a redis:// URL
// or a plain host:port pair.
type Redis struct {
	Addr string `env:"ADDRESS" envDefault:"localhost:6379"`
	// CounterRetention is the TTL applied to daily counter hashes.
	CounterRetention time.Duration `env:"COUNTER_RETENTION" envDefault:"2160h"`
}
