package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors of the pipeline. Each instance
// owns its registry, so tests can create as many as they need.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Click capture
	ClicksCaptured      *prometheus.CounterVec
	ClickCaptureFailed  prometheus.Counter
	LinkNotFound        prometheus.Counter
	LandingPageNotFound prometheus.Counter

	// Postback ingestion
	PostbacksIngested *prometheus.CounterVec

	// Workflow engine
	StepExecutions *prometheus.CounterVec
	StepDuration   *prometheus.HistogramVec
	RunsCompleted  *prometheus.CounterVec
	RunsRecovered  prometheus.Counter
	DeadLetters    prometheus.Counter
}

// New creates a Metrics instance registered on a fresh registry that also
// carries the Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGoCollector(), prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		ClicksCaptured: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clicks_captured_total",
				Help: "Clicks captured by route",
			},
			[]string{"route"}, // link, landing
		),
		ClickCaptureFailed: f.NewCounter(prometheus.CounterOpts{
			Name: "clicks_capture_failed_total",
			Help: "Clicks that could not be persisted; the visitor was still redirected",
		}),
		LinkNotFound: f.NewCounter(prometheus.CounterOpts{
			Name: "clicks_link_not_found_total",
			Help: "Click requests for unknown or inactive links",
		}),
		LandingPageNotFound: f.NewCounter(prometheus.CounterOpts{
			Name: "clicks_landing_page_not_found_total",
			Help: "Click requests for unknown or unpublished landing page slugs",
		}),
		PostbacksIngested: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "postbacks_ingested_total",
				Help: "Postbacks received by outcome",
			},
			[]string{"outcome"}, // published, invalid, publish_failed
		),
		StepExecutions: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "workflow_step_executions_total",
				Help: "Workflow step attempts by step and outcome",
			},
			[]string{"step", "outcome"}, // succeeded, retryable, terminal, skipped
		),
		StepDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "workflow_step_duration_seconds",
				Help:    "Duration of a single workflow step attempt",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"step"},
		),
		RunsCompleted: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "workflow_runs_completed_total",
				Help: "Workflow runs reaching a terminal status",
			},
			[]string{"status"},
		),
		RunsRecovered: f.NewCounter(prometheus.CounterOpts{
			Name: "workflow_runs_recovered_total",
			Help: "Stale runs re-dispatched by the recovery sweep",
		}),
		DeadLetters: f.NewCounter(prometheus.CounterOpts{
			Name: "workflow_dead_letters_total",
			Help: "Runs moved to the dead letter table",
		}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency labelled by the chi route
// pattern rather than the raw path.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
