package httpadapter

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"smartlink/internal/core/domain"
	"smartlink/internal/core/port"
)

// Geo headers set by the edge, in order of preference.
var countryHeaders = []string{"CF-IPCountry", "X-Vercel-IP-Country", "X-Country-Code"}

var interstitialTmpl = template.Must(template.New("interstitial").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="robots" content="noindex">
<title>{{.Title}}</title>
</head>
<body>
<main>
<h1>{{.Title}}</h1>
<p><a href="{{.URL}}" rel="nofollow">Continue</a></p>
</main>
</body>
</html>
`))

func requestContext(r *http.Request) domain.RequestContext {
	rc := domain.RequestContext{
		UserAgent: r.UserAgent(),
		Referrer:  r.Referer(),
		Query:     make(map[string]string),
	}
	for _, name := range countryHeaders {
		if v := strings.TrimSpace(r.Header.Get(name)); v != "" {
			rc.Country = strings.ToUpper(v)
			break
		}
	}
	for key, values := range r.URL.Query() {
		if strings.HasPrefix(key, "utm_") && len(values) > 0 {
			rc.Query[key] = values[0]
		}
	}
	return rc
}

// handleLink records a click on /r/{link_id} and redirects to the link's
// tracking URL. Unknown links go to the not-found URL.
func (h *Handler) handleLink(w http.ResponseWriter, r *http.Request) {
	red, err := h.svc.Clicks.CaptureLink(r.Context(), chi.URLParam(r, "link_id"), requestContext(r))
	if err != nil {
		h.logCaptureError(r, err)
	}
	http.Redirect(w, r, red.URL, http.StatusFound)
}

// handleLanding records a click on /go/{slug}, sets the click cookies and
// either redirects or renders the interstitial page.
func (h *Handler) handleLanding(w http.ResponseWriter, r *http.Request) {
	red, err := h.svc.Clicks.CaptureLanding(r.Context(), chi.URLParam(r, "slug"), requestContext(r))
	if err != nil {
		h.logCaptureError(r, err)
		http.Redirect(w, r, red.URL, http.StatusFound)
		return
	}

	if red.ClickID != "" {
		if err = h.cookies.Set(w, red.ClickID, red.LinkID, red.URL); err != nil {
			h.logger.Error("click cookie signing failed", slog.String("click_id", red.ClickID), slog.Any("error", err))
		}
	}

	if red.Interstitial == nil {
		http.Redirect(w, r, red.URL, http.StatusFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	err = interstitialTmpl.Execute(w, struct{ Title, URL string }{red.Interstitial.Title, red.URL})
	if err != nil {
		h.logger.Error("render interstitial", slog.String("slug", red.Interstitial.Slug), slog.Any("error", err))
	}
}

func (h *Handler) logCaptureError(r *http.Request, err error) {
	if errors.Is(err, port.ErrLinkNotFound) {
		h.logger.Debug("unknown link", slog.String("path", r.URL.Path))
		return
	}
	h.logger.Error("click capture error", slog.String("path", r.URL.Path), slog.Any("error", err))
}
