package webhook

// Stats is derived from the current webhook set and test history
type Stats struct {
	Total               int     `json:"total"`
	Active              int     `json:"active"`
	Inactive            int     `json:"inactive"`
	TotalDeliveries     int     `json:"totalDeliveries"`
	SuccessRate         float64 `json:"successRate"`
	AverageResponseTime float64 `json:"averageResponseTime"`
}

/* ComputeStats recomputes the aggregate from scratch
 * SuccessRate averages the per-webhook success ratio of webhooks that were tested at least once
 * AverageResponseTime is the mean probe latency of the history in milliseconds
 */
func ComputeStats(webhooks []Webhook, results []TestResult) Stats {
	var s Stats
	var ratioSum float64
	var tested int
	for _, w := range webhooks {
		s.Total++
		if w.IsActive {
			s.Active++
		} else {
			s.Inactive++
		}
		s.TotalDeliveries += w.DeliveryAttempts
		if w.DeliveryAttempts > 0 {
			ratioSum += float64(w.SuccessfulDeliveries) / float64(w.DeliveryAttempts)
			tested++
		}
	}
	if tested > 0 {
		s.SuccessRate = ratioSum / float64(tested) * 100
	}

	if len(results) > 0 {
		var total int64
		for _, r := range results {
			total += r.ResponseTime
		}
		s.AverageResponseTime = float64(total) / float64(len(results))
	}
	return s
}
