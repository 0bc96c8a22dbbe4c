package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"smartlink/internal/core/port"
)

func postbackParams(r *http.Request) port.PostbackParams {
	q := r.URL.Query()
	return port.PostbackParams{
		ClickID:         q.Get("click_id"),
		ExternalClickID: q.Get("ecid"),
		ConversionType:  q.Get("type"),
		TransactionType: q.Get("tx_type"),
		TransactionID:   q.Get("tx_id"),
		Gross:           q.Get("gross"),
		Net:             q.Get("net"),
		FanID:           q.Get("fan_id"),
		FanUsername:     q.Get("fan_user"),
		CreatorAcctID:   q.Get("creator_acct"),
		CreatorUsername: q.Get("creator_user"),
		LinkID:          q.Get("link_id"),
		LinkName:        q.Get("link_name"),
		Timestamp:       q.Get("ts"),
	}
}

// handlePostback validates a conversion postback and publishes it. Invalid
// postbacks get 400 and are dropped; a failed publish gets 500 so the
// traffic source retries.
func (h *Handler) handlePostback(w http.ResponseWriter, r *http.Request) {
	env, err := h.svc.Postbacks.Ingest(r.Context(), postbackParams(r))
	if errors.Is(err, port.ErrInvalidPostback) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.logger.Error("postback publish error", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.logger.Info("postback received",
		slog.String("external_event_key", env.ExternalEventKey),
		slog.String("link_id", env.SmartLinkID))
	writeJSON(w, http.StatusOK, map[string]bool{"received": true})
}
