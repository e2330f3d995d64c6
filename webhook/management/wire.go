package management

import (
	"sort"
	"time"

	"github.com/marcelsud/webhook-console/webhook"
)

type wireTrigger struct {
	Codename string `json:"codename"`
	Enabled  bool   `json:"enabled"`
}

type wireHeader struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// wireWebhook is the management API representation of a webhook
type wireWebhook struct {
	ID       string        `json:"id,omitempty"`
	Name     string        `json:"name"`
	URL      string        `json:"url"`
	Secret   string        `json:"secret,omitempty"`
	Enabled  bool          `json:"enabled"`
	Triggers []wireTrigger `json:"triggers"`
	Headers  []wireHeader  `json:"headers"`

	Created       *time.Time `json:"created,omitempty"`
	LastModified  *time.Time `json:"last_modified,omitempty"`
	LastTriggered *time.Time `json:"last_triggered,omitempty"`

	DeliveryAttempts     int `json:"delivery_attempts,omitempty"`
	SuccessfulDeliveries int `json:"successful_deliveries,omitempty"`
	FailedDeliveries     int `json:"failed_deliveries,omitempty"`
}

func fromDomain(wh webhook.Webhook) wireWebhook {
	w := wireWebhook{
		Name:     wh.Name,
		URL:      wh.URL,
		Secret:   wh.Secret,
		Enabled:  wh.IsActive,
		Triggers: make([]wireTrigger, 0, len(wh.Triggers)),
		Headers:  make([]wireHeader, 0, len(wh.Headers)),
	}
	for _, t := range wh.Triggers {
		w.Triggers = append(w.Triggers, wireTrigger{Codename: t.Codename, Enabled: t.IsEnabled})
	}
	for k, v := range wh.Headers {
		w.Headers = append(w.Headers, wireHeader{Key: k, Value: v})
	}
	// map order is random, keep request bodies stable
	sort.Slice(w.Headers, func(i, j int) bool { return w.Headers[i].Key < w.Headers[j].Key })
	return w
}

func (w wireWebhook) toDomain(environmentID string) webhook.Webhook {
	wh := webhook.Webhook{
		ID:                   w.ID,
		Name:                 w.Name,
		URL:                  w.URL,
		EnvironmentID:        environmentID,
		Triggers:             make([]webhook.Trigger, 0, len(w.Triggers)),
		Headers:              make(map[string]string, len(w.Headers)),
		Secret:               w.Secret,
		IsActive:             w.Enabled,
		DeliveryAttempts:     w.DeliveryAttempts,
		SuccessfulDeliveries: w.SuccessfulDeliveries,
		FailedDeliveries:     w.FailedDeliveries,
	}
	for _, t := range w.Triggers {
		wh.Triggers = append(wh.Triggers, webhook.NewTrigger(t.Codename, t.Enabled))
	}
	for _, h := range w.Headers {
		wh.Headers[h.Key] = h.Value
	}
	if w.Created != nil {
		wh.CreatedAt = *w.Created
	}
	if w.LastModified != nil {
		wh.UpdatedAt = *w.LastModified
	} else {
		wh.UpdatedAt = wh.CreatedAt
	}
	if w.LastTriggered != nil {
		t := *w.LastTriggered
		wh.LastTriggered = &t
	}
	return wh
}
