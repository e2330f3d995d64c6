package metrics

import (
	"context"
	"fmt"
	"net/http"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/marcelsud/webhook-console/webhook"
)

// OTelExporter provides OpenTelemetry metrics export following OTel standards
type OTelExporter struct {
	meterProvider *sdkmetric.MeterProvider
	collector     Collector
	source        Source
	registry      *promclient.Registry

	// OTel meters and instruments
	meter               metric.Meter
	webhookCountGauge   metric.Int64ObservableGauge
	deliveryCountGauge  metric.Int64ObservableGauge
	failurePointGauge   metric.Int64ObservableGauge
	successRateGauge    metric.Float64ObservableGauge
	responseTimeGauge   metric.Float64ObservableGauge
	modeGauge           metric.Int64ObservableGauge
	probeCounter        metric.Int64Counter
	probeDurationMillis metric.Int64Histogram
}

/* NewOTelExporter creates a new OpenTelemetry metrics exporter with Prometheus format
 * A nil registry exports to the Prometheus default registerer
 */
func NewOTelExporter(collector Collector, source Source, registry *promclient.Registry) (*OTelExporter, error) {
	var opts []prometheus.Option
	if registry != nil {
		opts = append(opts, prometheus.WithRegisterer(registry))
	}

	// Create Prometheus exporter
	exporter, err := prometheus.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	// Create meter provider
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	if registry == nil {
		otel.SetMeterProvider(meterProvider)
	}

	// Create meter with service info
	meter := meterProvider.Meter(
		"webhook-console",
		metric.WithInstrumentationVersion("1.0.0"),
	)

	oe := &OTelExporter{
		meterProvider: meterProvider,
		collector:     collector,
		source:        source,
		registry:      registry,
		meter:         meter,
	}

	// Register metrics instruments
	if err := oe.registerInstruments(); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}

	return oe, nil
}

// registerInstruments creates and registers all OpenTelemetry metric instruments
func (oe *OTelExporter) registerInstruments() error {
	var err error

	oe.webhookCountGauge, err = oe.meter.Int64ObservableGauge(
		"webhook.count",
		metric.WithDescription("Number of webhooks by state"),
		metric.WithUnit("{webhooks}"),
		metric.WithInt64Callback(oe.observeStatusCounts),
	)
	if err != nil {
		return fmt.Errorf("creating webhook count gauge: %w", err)
	}

	oe.deliveryCountGauge, err = oe.meter.Int64ObservableGauge(
		"webhook.deliveries",
		metric.WithDescription("Test deliveries in the session by outcome"),
		metric.WithUnit("{deliveries}"),
		metric.WithInt64Callback(oe.observeDeliveries),
	)
	if err != nil {
		return fmt.Errorf("creating delivery gauge: %w", err)
	}

	oe.failurePointGauge, err = oe.meter.Int64ObservableGauge(
		"webhook.failures",
		metric.WithDescription("Failed tests in the session by failure point"),
		metric.WithUnit("{tests}"),
		metric.WithInt64Callback(oe.observeFailurePoints),
	)
	if err != nil {
		return fmt.Errorf("creating failure point gauge: %w", err)
	}

	oe.successRateGauge, err = oe.meter.Float64ObservableGauge(
		"webhook.success_rate",
		metric.WithDescription("Mean per-webhook delivery success percentage"),
		metric.WithUnit("%"),
		metric.WithFloat64Callback(oe.observeSuccessRate),
	)
	if err != nil {
		return fmt.Errorf("creating success rate gauge: %w", err)
	}

	oe.responseTimeGauge, err = oe.meter.Float64ObservableGauge(
		"webhook.response_time.average",
		metric.WithDescription("Mean probe response time over the session history"),
		metric.WithUnit("ms"),
		metric.WithFloat64Callback(oe.observeResponseTime),
	)
	if err != nil {
		return fmt.Errorf("creating response time gauge: %w", err)
	}

	oe.modeGauge, err = oe.meter.Int64ObservableGauge(
		"webhook.console.mode",
		metric.WithDescription("1 for the current execution mode, 0 for the others"),
		metric.WithInt64Callback(oe.observeMode),
	)
	if err != nil {
		return fmt.Errorf("creating mode gauge: %w", err)
	}

	oe.probeCounter, err = oe.meter.Int64Counter(
		"webhook.probe.count",
		metric.WithDescription("Number of webhook tests performed"),
		metric.WithUnit("{probes}"),
	)
	if err != nil {
		return fmt.Errorf("creating probe counter: %w", err)
	}

	oe.probeDurationMillis, err = oe.meter.Int64Histogram(
		"webhook.probe.duration",
		metric.WithDescription("Response time of webhook tests"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(10, 50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000),
	)
	if err != nil {
		return fmt.Errorf("creating probe duration histogram: %w", err)
	}

	return nil
}

// observeStatusCounts is a callback that reports webhook counts by state
func (oe *OTelExporter) observeStatusCounts(ctx context.Context, observer metric.Int64Observer) error {
	statusCounts, err := oe.collector.GetStatusCounts(ctx)
	if err != nil {
		return err
	}

	for state, count := range statusCounts {
		observer.Observe(count, metric.WithAttributes(
			attribute.String("webhook.state", state),
		))
	}

	return nil
}

// observeDeliveries is a callback that reports deliveries by outcome
func (oe *OTelExporter) observeDeliveries(ctx context.Context, observer metric.Int64Observer) error {
	deliveries, err := oe.collector.GetDeliveryCounts(ctx)
	if err != nil {
		return err
	}

	observer.Observe(deliveries.Successful, metric.WithAttributes(
		attribute.String("delivery.outcome", "successful"),
	))
	observer.Observe(deliveries.Failed, metric.WithAttributes(
		attribute.String("delivery.outcome", "failed"),
	))

	return nil
}

// observeFailurePoints is a callback that reports failed tests by failure point
func (oe *OTelExporter) observeFailurePoints(ctx context.Context, observer metric.Int64Observer) error {
	failures, err := oe.collector.GetFailurePoints(ctx)
	if err != nil {
		return err
	}

	for fp, count := range failures {
		observer.Observe(count, metric.WithAttributes(
			attribute.String("failure.point", fp),
		))
	}

	return nil
}

func (oe *OTelExporter) observeSuccessRate(_ context.Context, observer metric.Float64Observer) error {
	observer.Observe(oe.source.Stats().SuccessRate)
	return nil
}

func (oe *OTelExporter) observeResponseTime(_ context.Context, observer metric.Float64Observer) error {
	observer.Observe(oe.source.Stats().AverageResponseTime)
	return nil
}

func (oe *OTelExporter) observeMode(_ context.Context, observer metric.Int64Observer) error {
	current := oe.source.Mode()
	for _, m := range []webhook.Mode{webhook.ModeAPI, webhook.ModeFallback, webhook.ModeUnknown} {
		var v int64
		if m == current {
			v = 1
		}
		observer.Observe(v, metric.WithAttributes(attribute.String("console.mode", m.String())))
	}
	return nil
}

// ProbeCompleted records one finished test, it makes the exporter a webhook.Observer
func (oe *OTelExporter) ProbeCompleted(ctx context.Context, result webhook.TestResult) {
	fp := result.FailurePoint.String()
	if result.Success {
		fp = "none"
	}
	attrs := metric.WithAttributes(
		attribute.Bool("probe.success", result.Success),
		attribute.String("failure.point", fp),
	)
	oe.probeCounter.Add(ctx, 1, attrs)
	oe.probeDurationMillis.Record(ctx, result.ResponseTime, attrs)
}

// ServeHTTP serves Prometheus-formatted metrics on the given HTTP handler
func (oe *OTelExporter) ServeHTTP() http.Handler {
	if oe.registry != nil {
		return promhttp.HandlerFor(oe.registry, promhttp.HandlerOpts{})
	}
	return promhttp.Handler()
}

// Shutdown gracefully shuts down the meter provider
func (oe *OTelExporter) Shutdown(ctx context.Context) error {
	if oe.meterProvider != nil {
		return oe.meterProvider.Shutdown(ctx)
	}
	return nil
}
