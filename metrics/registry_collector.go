package metrics

import (
	"context"
	"time"

	"github.com/marcelsud/webhook-console/webhook"
)

// Source is the part of the Registry the collector reads
type Source interface {
	Stats() webhook.Stats
	Mode() webhook.Mode
	TestResults(webhookID string) []webhook.TestResult
}

// RegistryCollector implements the Collector interface over a webhook Registry
type RegistryCollector struct {
	source Source
	now    func() time.Time
}

// NewRegistryCollector creates a new registry metrics collector
func NewRegistryCollector(source Source) *RegistryCollector {
	return &RegistryCollector{source: source, now: time.Now}
}

// Collect gathers all metrics from the registry
func (c *RegistryCollector) Collect(ctx context.Context) (Metrics, error) {
	statusCounts, err := c.GetStatusCounts(ctx)
	if err != nil {
		return Metrics{}, err
	}
	deliveries, err := c.GetDeliveryCounts(ctx)
	if err != nil {
		return Metrics{}, err
	}
	failurePoints, err := c.GetFailurePoints(ctx)
	if err != nil {
		return Metrics{}, err
	}

	stats := c.source.Stats()
	return Metrics{
		StatusCounts:        statusCounts,
		Deliveries:          deliveries,
		FailurePoints:       failurePoints,
		SuccessRate:         stats.SuccessRate,
		AverageResponseTime: stats.AverageResponseTime,
		Mode:                c.source.Mode().String(),
		Timestamp:           c.now(),
	}, nil
}

// GetStatusCounts returns the number of active and inactive webhooks
func (c *RegistryCollector) GetStatusCounts(ctx context.Context) (map[string]int64, error) {
	stats := c.source.Stats()
	return map[string]int64{
		"active":   int64(stats.Active),
		"inactive": int64(stats.Inactive),
	}, nil
}

// GetDeliveryCounts counts the session's test history by outcome
func (c *RegistryCollector) GetDeliveryCounts(ctx context.Context) (DeliveryCounts, error) {
	var counts DeliveryCounts
	for _, res := range c.source.TestResults("") {
		counts.Total++
		if res.Success {
			counts.Successful++
		} else {
			counts.Failed++
		}
	}
	return counts, nil
}

// GetFailurePoints counts failed tests in the history by failure point
func (c *RegistryCollector) GetFailurePoints(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, res := range c.source.TestResults("") {
		if !res.Success {
			counts[res.FailurePoint.String()]++
		}
	}
	return counts, nil
}
