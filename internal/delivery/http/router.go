package http //nolint:revive // directory-based package name, imported with alias

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Xausdorf/tenant-ledger/internal/infrastructure/metrics"
)

const requestTimeout = 30 * time.Second

// NewRouter mounts the ledger API. m and gatherer may be nil, which leaves
// out request metrics and the /metrics endpoint.
func NewRouter(h *Handler, m *metrics.Metrics, gatherer prometheus.Gatherer) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	if m != nil {
		r.Use(m.Middleware)
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/operations", h.HandleOperation)

		r.Route("/tenants/{tenant}", func(r chi.Router) {
			r.Post("/accounts", h.HandleCreateAccount)
			r.Post("/transfers", h.HandleTransfer)

			r.Route("/accounts/{document}", func(r chi.Router) {
				r.Post("/deposits", h.HandleDeposit)
				r.Post("/withdrawals", h.HandleWithdraw)
				r.Get("/balance", h.HandleBalance)
				r.Get("/extract", h.HandleExtract)
			})
		})
	})

	return r
}
