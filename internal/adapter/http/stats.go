package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	"smartlink/internal/core/domain"
	"smartlink/internal/core/port"
)

type stepView struct {
	Name      string          `json:"name"`
	State     string          `json:"state"`
	Attempts  int             `json:"attempts"`
	LastError string          `json:"last_error,omitempty"`
	Output    json.RawMessage `json:"output,omitempty"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type runView struct {
	RunID            string          `json:"run_id"`
	ExternalEventKey string          `json:"external_event_key"`
	Status           string          `json:"status"`
	Payload          json.RawMessage `json:"payload"`
	Steps            []stepView      `json:"steps"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	CompletedAt      *time.Time      `json:"completed_at,omitempty"`
}

func newRunView(run *domain.WorkflowRun) runView {
	v := runView{
		RunID:            run.RunID,
		ExternalEventKey: run.ExternalEventKey,
		Status:           string(run.Status),
		Payload:          run.Payload,
		CreatedAt:        run.CreatedAt,
		UpdatedAt:        run.UpdatedAt,
		CompletedAt:      run.CompletedAt,
	}
	for _, s := range run.Steps {
		v.Steps = append(v.Steps, stepView{
			Name:      s.Name,
			State:     string(s.State),
			Attempts:  s.Attempts,
			LastError: s.LastError,
			Output:    s.Output,
			UpdatedAt: s.UpdatedAt,
		})
	}
	sort.Slice(v.Steps, func(i, j int) bool { return v.Steps[i].Name < v.Steps[j].Name })
	return v
}

// handleGetRun returns a workflow run with its per-step ledger.
func (h *Handler) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, err := h.svc.Reporting.GetRun(r.Context(), chi.URLParam(r, "run_id"))
	if errors.Is(err, port.ErrRunNotFound) {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}
	if err != nil {
		h.logger.Error("get run error", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, newRunView(run))
}

// handleDailyStats returns a tenant's counters for one UTC day. It accepts
// a required tenant_id and an optional date (YYYY-MM-DD, default today).
func (h *Handler) handleDailyStats(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tenantID := q.Get("tenant_id")
	if tenantID == "" {
		writeError(w, http.StatusBadRequest, "tenant_id is required")
		return
	}
	day := time.Now().UTC()
	if raw := q.Get("date"); raw != "" {
		var err error
		day, err = time.Parse(time.DateOnly, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid 'date', expected YYYY-MM-DD")
			return
		}
	}

	stats, err := h.svc.Reporting.DailyStats(r.Context(), tenantID, day)
	if err != nil {
		h.logger.Error("stats error", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady runs every readiness check with a short timeout.
func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	failed := make(map[string]string)
	for _, c := range h.checks {
		if err := c.Ping(ctx); err != nil {
			failed[c.Name] = err.Error()
		}
	}
	if len(failed) > 0 {
		h.logger.Warn("readiness check failed", slog.Any("checks", failed))
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"status": "unavailable", "failed": failed})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
