package metrics

import (
	"context"
	"time"
)

// Metrics represents the current state of the console.
type Metrics struct {
	// StatusCounts maps "active"/"inactive" to the number of webhooks in that state
	StatusCounts map[string]int64 `json:"status_counts"`

	// Deliveries counts test deliveries of the current webhook set
	Deliveries DeliveryCounts `json:"deliveries"`

	// FailurePoints maps failure point to the number of failed tests in the history
	FailurePoints map[string]int64 `json:"failure_points"`

	// SuccessRate is the mean per-webhook success percentage
	SuccessRate float64 `json:"success_rate"`

	// AverageResponseTime is the mean probe latency in milliseconds
	AverageResponseTime float64 `json:"average_response_time_ms"`

	// Mode is the execution mode at collection time
	Mode string `json:"mode"`

	// Timestamp when metrics were collected
	Timestamp time.Time `json:"timestamp"`
}

// DeliveryCounts splits test deliveries by outcome.
type DeliveryCounts struct {
	Total      int64 `json:"total"`
	Successful int64 `json:"successful"`
	Failed     int64 `json:"failed"`
}

// Collector defines the interface for collecting metrics from the console.
type Collector interface {
	// Collect gathers current metrics from the system
	Collect(ctx context.Context) (Metrics, error)

	// GetStatusCounts returns the count of webhooks by state
	GetStatusCounts(ctx context.Context) (map[string]int64, error)

	// GetDeliveryCounts returns test deliveries by outcome
	GetDeliveryCounts(ctx context.Context) (DeliveryCounts, error)

	// GetFailurePoints returns failed tests by failure point
	GetFailurePoints(ctx context.Context) (map[string]int64, error)
}
