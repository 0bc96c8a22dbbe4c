package configs

import "time"

// Workflow configures the durable workflow engine. MaxAttempts is the
// per-step retry ceiling; the alert step always runs once regardless.
type Workflow struct {
	Concurrency      int           `env:"CONCURRENCY" envDefault:"8"`
	MaxAttempts      int           `env:"MAX_ATTEMPTS" envDefault:"3"`
	StepTimeout      time.Duration `env:"STEP_TIMEOUT" envDefault:"10s"`
	BackoffBase      time.Duration `env:"BACKOFF_BASE" envDefault:"500ms"`
	BackoffMax       time.Duration `env:"BACKOFF_MAX" envDefault:"30s"`
	LeaseDuration    time.Duration `env:"LEASE_DURATION" envDefault:"1m"`
	RecoverySchedule string        `env:"RECOVERY_SCHEDULE" envDefault:"@every 1m"`
	StaleAfter       time.Duration `env:"STALE_AFTER" envDefault:"5m"`
	RecoveryBatch    int           `env:"RECOVERY_BATCH" envDefault:"100"`
}
