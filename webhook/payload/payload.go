package payload

import (
	"encoding/json"
	"fmt"
	"time"
)

// TestMessage is the fixed message carried by every test payload
const TestMessage = "This is a test webhook from the webhook console"

// TestPayload is the body of the synthetic request sent when a webhook is tested
type TestPayload struct {
	// Test is always true so receivers can ignore probes
	Test bool `json:"test"`

	// Timestamp is when the probe was built, RFC 3339 with nanoseconds
	Timestamp time.Time `json:"timestamp"`

	WebhookID   string `json:"webhookId"`
	WebhookName string `json:"webhookName"`
	Message     string `json:"message"`
}

// Validate checks the payload structure
func (p TestPayload) Validate() error {
	if !p.Test {
		return fmt.Errorf("test flag must be set")
	}
	if p.WebhookID == "" {
		return fmt.Errorf("webhookId is required")
	}
	if p.Timestamp.IsZero() {
		return fmt.Errorf("timestamp is required")
	}
	return nil
}

// MarshalJSON returns the JSON encoding of the payload
func (p TestPayload) MarshalJSON() ([]byte, error) {
	type Alias TestPayload
	return json.Marshal(&struct {
		Timestamp string `json:"timestamp"`
		*Alias
	}{
		Timestamp: p.Timestamp.Format(time.RFC3339Nano),
		Alias:     (*Alias)(&p),
	})
}

// UnmarshalJSON parses the JSON-encoded data and stores the result
func (p *TestPayload) UnmarshalJSON(data []byte) error {
	type Alias TestPayload
	aux := &struct {
		Timestamp string `json:"timestamp"`
		*Alias
	}{
		Alias: (*Alias)(p),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("unmarshaling payload: %w", err)
	}

	timestamp, err := time.Parse(time.RFC3339Nano, aux.Timestamp)
	if err != nil {
		timestamp, err = time.Parse(time.RFC3339, aux.Timestamp)
		if err != nil {
			return fmt.Errorf("parsing timestamp: %w", err)
		}
	}
	p.Timestamp = timestamp

	return nil
}

// NewTest creates the test payload for a webhook
func NewTest(webhookID, webhookName string, now time.Time) (TestPayload, error) {
	payload := TestPayload{
		Test:        true,
		Timestamp:   now.UTC(),
		WebhookID:   webhookID,
		WebhookName: webhookName,
		Message:     TestMessage,
	}

	if err := payload.Validate(); err != nil {
		return TestPayload{}, fmt.Errorf("validating payload: %w", err)
	}

	return payload, nil
}

// Parse parses a JSON body into a TestPayload
func Parse(data []byte) (TestPayload, error) {
	var payload TestPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return TestPayload{}, fmt.Errorf("unmarshaling payload: %w", err)
	}

	if err := payload.Validate(); err != nil {
		return TestPayload{}, fmt.Errorf("validating payload: %w", err)
	}

	return payload, nil
}

// Bytes returns the minified JSON encoding
func (p TestPayload) Bytes() ([]byte, error) {
	return json.Marshal(p)
}
