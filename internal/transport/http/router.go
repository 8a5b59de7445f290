// Package httptransport is the thin HTTP layer over the iban and bic
// packages. Handlers decode, delegate and encode; validation semantics live
// in the domain packages.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fincode/internal/platform/metrics"
	"fincode/internal/platform/middleware"
	"fincode/pkg/bic"
	"fincode/pkg/platform/httputil"
)

// Handler wires the validation endpoints to their dependencies.
type Handler struct {
	logger    *slog.Logger
	metrics   *metrics.Metrics
	directory bic.Directory
}

// New constructs the HTTP handler. directory may be nil; BIC resolution
// endpoints then answer with an error and IBAN responses omit the bic field.
func New(logger *slog.Logger, m *metrics.Metrics, directory bic.Directory) *Handler {
	return &Handler{
		logger:    logger,
		metrics:   m,
		directory: directory,
	}
}

// NewRouter builds the full route tree with the middleware chain applied.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(h.logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.ClientMetadata)
	r.Use(middleware.Logger(h.logger))
	r.Use(middleware.Latency(h.metrics))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/iban/parse", h.handleParseIBAN)
		r.Post("/iban/generate", h.handleGenerateIBAN)
		r.Post("/iban/batch", h.handleBatchParseIBAN)
		r.Post("/bic/parse", h.handleParseBIC)
		r.Get("/bic/{countryCode}/{bankCode}", h.handleBICByBankCode)
	})

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
