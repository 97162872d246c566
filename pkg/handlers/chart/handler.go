package chart

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/bshore/github-contribution-merge/pkg/errs"
	"github.com/bshore/github-contribution-merge/pkg/metrics"
	"github.com/bshore/github-contribution-merge/pkg/models/domain"
	"github.com/bshore/github-contribution-merge/pkg/services/chart"
	"github.com/bshore/github-contribution-merge/pkg/services/render"
	"github.com/rs/zerolog"
)

const (
	defaultYears = 1
	// The response is publicly cacheable for a short window, with long
	// stale-serving allowances for CDNs.
	cacheControl = "public, max-age=300, stale-while-revalidate=86400, stale-if-error=86400"
)

type Handler struct {
	controller chart.Controller
	primary    string
}

func NewHandler(controller chart.Controller, primary string) *Handler {
	return &Handler{controller: controller, primary: primary}
}

// GetChart serves GET /chart.svg?merge=a,b&years=3&theme=dark.
// Parameter validation happens before any upstream fan-out.
func (h *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	req, err := h.parseRequest(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	doc, err := h.controller.RenderChart(ctx, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	metrics.RequestsTotal.WithLabelValues(strconv.Itoa(http.StatusOK)).Inc()
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", cacheControl)
	if _, err := w.Write([]byte(doc)); err != nil {
		logger.Error().Err(err).Msg("failed to write chart response")
	}
}

func (h *Handler) parseRequest(r *http.Request) (domain.ChartRequest, error) {
	req := domain.ChartRequest{
		Primary: h.primary,
		Years:   defaultYears,
		Theme:   render.DefaultTheme,
	}

	if merge := r.URL.Query().Get("merge"); merge != "" {
		for _, login := range strings.Split(merge, ",") {
			if login = strings.TrimSpace(login); login != "" {
				req.Secondaries = append(req.Secondaries, login)
			}
		}
	}

	if years := r.URL.Query().Get("years"); years != "" {
		n, err := strconv.Atoi(years)
		if err != nil || n < 1 {
			return domain.ChartRequest{}, errs.NewValidationError("invalid years value %q: must be a positive integer", years)
		}
		req.Years = n
	}

	if theme := r.URL.Query().Get("theme"); theme != "" {
		if !render.IsValidTheme(theme) {
			return domain.ChartRequest{}, errs.NewValidationError(
				"invalid theme %q: valid themes are %s", theme, strings.Join(render.ThemeNames(), ", "))
		}
		req.Theme = theme
	}

	return req, nil
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	metrics.RequestsTotal.WithLabelValues(strconv.Itoa(errs.StatusOf(err))).Inc()
	errs.WriteHTTP(w, r, err)
}
