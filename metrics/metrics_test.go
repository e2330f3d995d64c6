package metrics_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcelsud/webhook-console/metrics"
	"github.com/marcelsud/webhook-console/webhook"
	"github.com/marcelsud/webhook-console/webhook/mocks"
)

func history() []webhook.TestResult {
	return []webhook.TestResult{
		{WebhookID: "a", ProbeResult: webhook.ProbeResult{Success: true, StatusCode: 200, ResponseTime: 20}},
		{WebhookID: "a", ProbeResult: webhook.ProbeResult{Success: false, StatusCode: 401, FailurePoint: webhook.FailureAuthentication}},
		{WebhookID: "b", ProbeResult: webhook.ProbeResult{Success: false, FailurePoint: webhook.FailureTimeout}},
		{WebhookID: "b", ProbeResult: webhook.ProbeResult{Success: false, FailurePoint: webhook.FailureTimeout}},
	}
}

func source(t *testing.T) *mocks.UseCase {
	uc := mocks.NewUseCase(t)
	uc.On("Stats").Return(webhook.Stats{Total: 3, Active: 2, Inactive: 1, SuccessRate: 25, AverageResponseTime: 5}).Maybe()
	uc.On("Mode").Return(webhook.ModeFallback).Maybe()
	uc.On("TestResults", "").Return(history()).Maybe()
	return uc
}

func TestRegistryCollector(t *testing.T) {
	ctx := context.Background()
	c := metrics.NewRegistryCollector(source(t))

	t.Run("status counts", func(t *testing.T) {
		counts, err := c.GetStatusCounts(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]int64{"active": 2, "inactive": 1}, counts)
	})

	t.Run("deliveries", func(t *testing.T) {
		d, err := c.GetDeliveryCounts(ctx)
		require.NoError(t, err)
		assert.Equal(t, metrics.DeliveryCounts{Total: 4, Successful: 1, Failed: 3}, d)
	})

	t.Run("failure points", func(t *testing.T) {
		fps, err := c.GetFailurePoints(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]int64{"authentication": 1, "timeout": 2}, fps)
	})

	t.Run("collect", func(t *testing.T) {
		m, err := c.Collect(ctx)
		require.NoError(t, err)
		assert.Equal(t, "fallback", m.Mode)
		assert.Equal(t, 25.0, m.SuccessRate)
		assert.Equal(t, 5.0, m.AverageResponseTime)
		assert.False(t, m.Timestamp.IsZero())
	})
}

func TestOTelExporter(t *testing.T) {
	src := source(t)
	registry := promclient.NewRegistry()
	exporter, err := metrics.NewOTelExporter(metrics.NewRegistryCollector(src), src, registry)
	require.NoError(t, err)
	t.Cleanup(func() { _ = exporter.Shutdown(context.Background()) })

	var _ webhook.Observer = exporter
	exporter.ProbeCompleted(context.Background(), history()[0])
	exporter.ProbeCompleted(context.Background(), history()[2])

	srv := httptest.NewServer(exporter.ServeHTTP())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := string(body)

	for _, name := range []string{
		"webhook_count",
		"webhook_deliveries",
		"webhook_failures",
		"webhook_success_rate",
		"webhook_response_time_average",
		"webhook_console_mode",
		"webhook_probe_count",
		"webhook_probe_duration",
	} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, `failure_point="timeout"`)
	assert.Contains(t, out, `console_mode="fallback"`)
}
