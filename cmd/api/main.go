package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog"

	"github.com/marcelsud/webhook-console/config"
	"github.com/marcelsud/webhook-console/host"
	"github.com/marcelsud/webhook-console/internal/http/chi"
	"github.com/marcelsud/webhook-console/metrics"
	"github.com/marcelsud/webhook-console/settings"
	"github.com/marcelsud/webhook-console/webhook"
	"github.com/marcelsud/webhook-console/webhook/local"
	"github.com/marcelsud/webhook-console/webhook/management"
	"github.com/marcelsud/webhook-console/webhook/probe"
)

const TIMEOUT = 30 * time.Second

/* main wires the console together
 * Imports only go down: the app imports the registry, which imports its backends
 */
func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Println(err)
		return
	}
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	logger := httplog.NewLogger("webhook-console", httplog.Options{
		JSON: true,
	})

	store := settings.NewStore(settings.Values{
		APIKey:        cfg.ManagementAPIKey,
		EnvironmentID: cfg.EnvironmentID,
		ProjectID:     cfg.ProjectID,
	})

	// the host may supply the environment id when none is configured
	loader := host.NewLoader(host.NewFileProvider(cfg.HostContextFile), store, logger)
	loader.Start(ctx, TIMEOUT)

	registry := webhook.NewRegistry(
		store,
		local.NewSimulator(local.WithLatency(cfg.SimulatedLatency)),
		probe.New(probe.WithTimeout(cfg.ProbeTimeout)),
		webhook.WithRemote(management.Factory(
			management.WithBaseURL(cfg.ManagementBaseURL),
			management.WithTimeout(cfg.ManagementTimeout),
		)),
		webhook.WithLogger(logger),
	)

	exporter, err := metrics.NewOTelExporter(metrics.NewRegistryCollector(registry), registry, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	registry.AddObserver(exporter)
	logger.Info().Str("mode", registry.Mode().String()).Msg("registry ready")

	// a test waits for its probe, the request deadline has to outlast it
	requestTimeout := cfg.ProbeTimeout + TIMEOUT
	r := chi.Handlers(ctx, chi.Dependencies{
		Webhooks:       registry,
		Settings:       store,
		Host:           loader,
		Metrics:        exporter.ServeHTTP(),
		RequestTimeout: requestTimeout,
	})
	http.Handle("/", r)
	srv := &http.Server{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: requestTimeout + 5*time.Second,
		Addr:         ":" + cfg.Port,
		Handler:      http.DefaultServeMux,
	}

	errShutdown := make(chan error, 1)
	go shutdown(srv, exporter, ctx, errShutdown)
	fmt.Printf("Listening on port %s\n", cfg.Port)
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		fmt.Println(err)
		return
	}
	err = <-errShutdown
	if err != nil {
		fmt.Println(err)
		return
	}
}

func shutdown(server *http.Server, exporter *metrics.OTelExporter, ctxShutdown context.Context, errShutdown chan error) {
	<-ctxShutdown.Done()

	ctxTimeout, stop := context.WithTimeout(context.Background(), TIMEOUT)
	defer stop()

	err := server.Shutdown(ctxTimeout)
	if merr := exporter.Shutdown(ctxTimeout); merr != nil {
		fmt.Println(merr)
	}
	switch err {
	case nil:
		fmt.Printf("\nShutting down server...\n")
		errShutdown <- nil
	case context.DeadlineExceeded:
		errShutdown <- fmt.Errorf("Forcing closing the server")
	default:
		errShutdown <- fmt.Errorf("Forcing closing the server")
	}
}
