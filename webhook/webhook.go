package webhook

import "time"

/* Webhook represents a managed webhook configuration
 * Uses value semantics as it represents data, not behavior
 */
type Webhook struct {
	ID                   string            `json:"id"`
	Name                 string            `json:"name"`
	URL                  string            `json:"url"`
	EnvironmentID        string            `json:"environmentId"`
	Triggers             []Trigger         `json:"triggers"`
	Headers              map[string]string `json:"headers"`
	Secret               string            `json:"secret,omitempty"`
	IsActive             bool              `json:"isActive"`
	DeliveryAttempts     int               `json:"deliveryAttempts"`
	SuccessfulDeliveries int               `json:"successfulDeliveries"`
	FailedDeliveries     int               `json:"failedDeliveries"`
	LastTriggered        *time.Time        `json:"lastTriggered,omitempty"`
	CreatedAt            time.Time         `json:"createdAt"`
	UpdatedAt            time.Time         `json:"updatedAt"`
}

// Trigger is an event subscription of a webhook
type Trigger struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Codename    string `json:"codename"`
	Description string `json:"description"`
	IsEnabled   bool   `json:"isEnabled"`
}

// FormData is the user-editable part of a webhook
type FormData struct {
	Name     string            `json:"name" validate:"notblank"`
	URL      string            `json:"url" validate:"notblank,url"`
	Triggers []string          `json:"triggers" validate:"min=1,dive,notblank"`
	Headers  map[string]string `json:"headers"`
	IsActive bool              `json:"isActive"`
	Secret   string            `json:"secret,omitempty"`
}

// Codenames returns the trigger codenames of the webhook in order
func (w Webhook) Codenames() []string {
	codenames := make([]string, 0, len(w.Triggers))
	for _, t := range w.Triggers {
		codenames = append(codenames, t.Codename)
	}
	return codenames
}

// Clone returns a deep copy so snapshots never share maps or slices
func (w Webhook) Clone() Webhook {
	c := w
	if w.Triggers != nil {
		c.Triggers = append([]Trigger(nil), w.Triggers...)
	}
	if w.Headers != nil {
		c.Headers = make(map[string]string, len(w.Headers))
		for k, v := range w.Headers {
			c.Headers[k] = v
		}
	}
	if w.LastTriggered != nil {
		t := *w.LastTriggered
		c.LastTriggered = &t
	}
	return c
}

// apply merges the form onto the webhook, keeping counters and identity
func (w Webhook) apply(form FormData, now time.Time) Webhook {
	updated := w.Clone()
	updated.Name = form.Name
	updated.URL = form.URL
	updated.Triggers = TriggersFor(form.Triggers)
	updated.Headers = copyHeaders(form.Headers)
	updated.IsActive = form.IsActive
	updated.Secret = form.Secret
	updated.UpdatedAt = now
	return updated
}

func copyHeaders(h map[string]string) map[string]string {
	out := make(map[string]string, len(h))
	for k, v := range h {
		out[k] = v
	}
	return out
}
