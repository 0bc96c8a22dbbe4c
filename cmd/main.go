package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"golang.org/x/sync/errgroup"

	"smartlink/internal/adapter/events"
	httpadapter "smartlink/internal/adapter/http"
	"smartlink/internal/adapter/membus"
	"smartlink/internal/adapter/notify"
	"smartlink/internal/adapter/postgres"
	"smartlink/internal/adapter/redis"
	"smartlink/internal/adapter/usecase"
	"smartlink/internal/config"
	"smartlink/internal/core/port"
	"smartlink/internal/db"
	"smartlink/internal/metrics"
	"smartlink/internal/pipeline"
	"smartlink/internal/workflow"
)

// main is the entry point of the smart link service. Depending on MODE it
// serves the HTTP edge (redirects and the postback webhook), runs the
// attribution workflow consumer, or both. On SIGINT/SIGTERM it stops
// accepting work and drains in-flight requests and runs.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("mode", cfg.Mode))

	if err = run(cfg, logger); err != nil {
		logger.Error("service stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	var reporter workflow.Reporter
	if cfg.Sentry.DSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.Sentry.DSN,
			Environment:      cfg.Env,
			AttachStacktrace: true,
		})
		if err != nil {
			return fmt.Errorf("init sentry: %w", err)
		}
		defer sentry.Flush(2 * time.Second)
		reporter = workflow.SentryReporter{}
	}

	if cfg.Psql.RunMigrations {
		from, err := db.Migrate(cfg.Psql.Addr.String())
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Uint64("from_version", uint64(from)))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo data seeded")
	}

	redisClient, err := redis.Connect(ctx, cfg.Redis.Addr)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	var (
		m           = metrics.New()
		links       = postgres.NewLinkRepository(pool)
		conversions = postgres.NewConversionRepository(pool)
		runs        = postgres.NewWorkflowRepository(pool)
		counters    = redis.NewCounterStore(redisClient, cfg.Redis.CounterRetention)
	)

	var (
		publisher port.EventPublisher
		consumer  port.EventConsumer
	)
	if cfg.Kafka.UseMemory() {
		bus := membus.New(1024)
		defer bus.Close()
		publisher, consumer = bus, bus
		logger.Warn("using in-process event bus, postbacks are not durable before their run is created")
	} else {
		if cfg.RunsAPI() {
			p, err := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
			if err != nil {
				return err
			}
			defer p.Close()
			publisher = p
		}
		if cfg.RunsWorker() {
			c, err := events.NewKafkaConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, logger)
			if err != nil {
				return err
			}
			defer c.Close()
			consumer = c
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	if cfg.RunsWorker() {
		plan := pipeline.NewPlan(pipeline.Deps{
			Links:               links,
			Tenants:             links,
			Clicks:              conversions,
			Conversions:         conversions,
			Counters:            counters,
			AdPlatform:          notify.NewAdPlatformClient(cfg.AdPlatform.BaseURL, cfg.AdPlatform.Currency, cfg.AdPlatform.Timeout),
			Postbacks:           notify.NewPostbackClient(cfg.Postback.Timeout, cfg.Postback.RatePerHost, cfg.Postback.BurstPerHost),
			Alerts:              notify.NewSlackNotifier(cfg.Alert.WebhookURL, cfg.Alert.Timeout),
			AlertThresholdCents: cfg.Alert.HighValueThresholdCents,
			Logger:              logger,
		})
		backoff := workflow.BackoffConfig{BaseDelay: cfg.Workflow.BackoffBase, MaxDelay: cfg.Workflow.BackoffMax}
		engine := workflow.NewEngine(runs, runs, plan, workflow.Config{
			MaxAttempts: cfg.Workflow.MaxAttempts,
			StepTimeout: cfg.Workflow.StepTimeout,
			Lease:       cfg.Workflow.LeaseDuration,
			Backoff:     backoff,
		}, logger, m, reporter)

		recovery, err := workflow.NewRecovery(cfg.Workflow.RecoverySchedule, runs, engine,
			cfg.Workflow.StaleAfter, cfg.Workflow.RecoveryBatch, logger, m)
		if err != nil {
			return err
		}
		recovery.Start()
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			recovery.Stop(stopCtx)
		}()

		dispatcher := workflow.NewDispatcher(consumer, engine, cfg.Workflow.Concurrency, backoff, logger)
		g.Go(func() error { return dispatcher.Run(gctx) })
	}

	if cfg.RunsAPI() {
		handler := httpadapter.NewHandler(httpadapter.Services{
			Clicks:    usecase.NewClickUseCase(links, conversions, logger, m, cfg.HTTP.NotFoundURL),
			Postbacks: usecase.NewPostbackUseCase(publisher, logger, m),
			Reporting: usecase.NewReportingUseCase(runs, counters),
		},
			httpadapter.NewClickCookies(cfg.Click.CookieSecret, cfg.Click.CookieTTL, cfg.Click.CookieSecure),
			[]httpadapter.Check{
				{Name: "postgres", Ping: pool.Ping},
				{Name: "redis", Ping: counters.Ping},
			},
			cfg.HTTP.NotFoundURL, logger, m)

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
			Handler:           handler.Router(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		g.Go(func() error {
			logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("http server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("server shutdown error", slog.Any("error", err))
				return nil
			}
			logger.Info("server gracefully stopped")
			return nil
		})
	}

	return g.Wait()
}
