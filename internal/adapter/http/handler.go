package httpadapter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"smartlink/internal/core/port"
	"smartlink/internal/metrics"
)

// Check is a named readiness check, e.g. a database ping.
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

// Services are the use cases served over HTTP.
type Services struct {
	Clicks    port.ClickUseCase
	Postbacks port.PostbackUseCase
	Reporting port.ReportingUseCase
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: redirect routes, the postback webhook, health endpoints and a small
// read-only operator API.
type Handler struct {
	svc     Services
	cookies *ClickCookies
	checks  []Check
	logger  *slog.Logger
	metrics *metrics.Metrics

	notFoundURL string
	router      chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, cookies *ClickCookies, checks []Check, notFoundURL string, logger *slog.Logger, m *metrics.Metrics) *Handler {
	h := &Handler{
		svc:         svc,
		cookies:     cookies,
		checks:      checks,
		logger:      logger,
		metrics:     m,
		notFoundURL: notFoundURL,
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, h.accessLog, h.recoverer, m.Middleware)

	r.Get("/go/{slug}", h.handleLanding)
	r.Get("/r/{link_id}", h.handleLink)
	r.Get("/webhooks/smart-link", h.handlePostback)

	r.Get("/healthz", h.handleHealth)
	r.Get("/readyz", h.handleReady)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/runs/{run_id}", h.handleGetRun)
		r.Get("/stats/daily", h.handleDailyStats)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Debug("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())))
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				h.logger.Error("handler panic",
					slog.String("path", r.URL.Path),
					slog.Any("panic", rec),
					slog.String("request_id", middleware.GetReqID(r.Context())))
				writeError(w, http.StatusInternalServerError, "internal error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
