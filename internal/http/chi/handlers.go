package chi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"

	"github.com/marcelsud/webhook-console/host"
	"github.com/marcelsud/webhook-console/settings"
	"github.com/marcelsud/webhook-console/webhook"
)

// HostContext returns the context reported by the host platform
type HostContext interface {
	Current() (host.Context, error)
}

// Dependencies are the services the console API is built on
type Dependencies struct {
	Webhooks webhook.UseCase
	Settings *settings.Store
	Host     HostContext
	Metrics  http.Handler

	// RequestTimeout bounds every request, it must exceed the probe timeout
	RequestTimeout time.Duration
	Now            func() time.Time
}

// Handlers sets up the console API routes
func Handlers(ctx context.Context, deps Dependencies) *chi.Mux {
	logger := httplog.NewLogger("webhook-console", httplog.Options{
		JSON: true,
	})
	if deps.RequestTimeout <= 0 {
		deps.RequestTimeout = 60 * time.Second
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(deps.RequestTimeout))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics)
	}

	r.Route("/v1", func(r chi.Router) {
		r.Method(http.MethodGet, "/webhooks", listWebhooks(deps.Webhooks))
		r.Method(http.MethodPost, "/webhooks", postWebhook(deps.Webhooks))
		r.Method(http.MethodGet, "/webhooks/{id}", getWebhook(deps.Webhooks))
		r.Method(http.MethodPut, "/webhooks/{id}", putWebhook(deps.Webhooks))
		r.Method(http.MethodDelete, "/webhooks/{id}", deleteWebhook(deps.Webhooks))
		r.Method(http.MethodPost, "/webhooks/{id}/test", testWebhook(deps.Webhooks))
		r.Method(http.MethodGet, "/webhooks/{id}/results", getResults(deps.Webhooks))
		r.Method(http.MethodGet, "/test-results", getResults(deps.Webhooks))

		r.Method(http.MethodGet, "/stats", getStats(deps.Webhooks))
		r.Method(http.MethodGet, "/mode", getMode(deps.Webhooks))
		r.Method(http.MethodGet, "/triggers", getTriggers())

		if deps.Settings != nil {
			r.Method(http.MethodGet, "/settings", getSettings(deps.Settings))
			r.Method(http.MethodPut, "/settings", putSettings(deps.Settings, deps.Webhooks))
			r.Method(http.MethodPost, "/settings/test", testConnection(deps.Webhooks))
			r.Method(http.MethodGet, "/settings/export", exportSettings(deps.Settings, deps.Now))
		}
		if deps.Host != nil {
			r.Method(http.MethodGet, "/context", getContext(deps.Host))
		}
	})

	return r
}
