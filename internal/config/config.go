package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"smartlink/internal/config/configs"
)

// Process modes accepted by Config.Mode.
const (
	ModeAll    = "all"
	ModeAPI    = "api"
	ModeWorker = "worker"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// forwarded to Sentry as the environment tag.
	Env string `env:"ENV" envDefault:"prod"`

	// Mode selects which parts of the pipeline this process runs: the
	// HTTP edge (api), the workflow consumer (worker) or both (all).
	Mode string `env:"MODE" envDefault:"all"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	Redis      configs.Redis      `envPrefix:"REDIS_"`
	Kafka      configs.Kafka      `envPrefix:"KAFKA_"`
	Workflow   configs.Workflow   `envPrefix:"WORKFLOW_"`
	Click      configs.Click      `envPrefix:"CLICK_"`
	AdPlatform configs.AdPlatform `envPrefix:"ADPLATFORM_"`
	Alert      configs.Alert      `envPrefix:"ALERT_"`
	Postback   configs.Postback   `envPrefix:"POSTBACK_"`
	Sentry     configs.Sentry     `envPrefix:"SENTRY_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	switch cfg.Mode {
	case ModeAll, ModeAPI, ModeWorker:
	default:
		return cfg, fmt.Errorf("unknown MODE %q", cfg.Mode)
	}
	if cfg.Kafka.UseMemory() && cfg.Mode != ModeAll {
		return cfg, fmt.Errorf("KAFKA_DRIVER=memory requires MODE=all")
	}
	return cfg, nil
}

// RunsAPI reports whether the HTTP edge should be started.
func (c Config) RunsAPI() bool {
	return c.Mode == ModeAll || c.Mode == ModeAPI
}

// RunsWorker reports whether the workflow consumer should be started.
func (c Config) RunsWorker() bool {
	return c.Mode == ModeAll || c.Mode == ModeWorker
}
