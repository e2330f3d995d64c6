package webhook

import "context"

/* Small, focused interfaces following "The Go Way"
 * Interfaces abstract behavior, not things
 */

// Reader provides read operations against a backend
type Reader interface {
	List(ctx context.Context) ([]Webhook, error)
}

// Writer provides write operations against a backend
type Writer interface {
	/* Create returns the stored webhook
	 * Backends assign the id and timestamps
	 */
	Create(ctx context.Context, wh Webhook) (Webhook, error)
	Update(ctx context.Context, wh Webhook) (Webhook, error)
	Delete(ctx context.Context, id string) error
}

// Backend is the strategy a Registry executes CRUD operations against
type Backend interface {
	Reader
	Writer
}

// BackendFactory builds a remote backend for the given credential and environment
type BackendFactory func(apiKey, environmentID string) Backend

// Credentials exposes the settings that select the execution mode
type Credentials interface {
	APIKey() string
	EnvironmentID() string
}

// Prober sends one synthetic request to a webhook target
type Prober interface {
	Probe(ctx context.Context, target ProbeTarget) (ProbeResult, error)
}

// Observer is notified after every recorded test
type Observer interface {
	ProbeCompleted(ctx context.Context, result TestResult)
}
