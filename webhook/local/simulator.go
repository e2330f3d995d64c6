package local

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/marcelsud/webhook-console/webhook"
)

// DefaultLatency mimics a round trip to the management API
const DefaultLatency = 500 * time.Millisecond

/* Simulator is the backend used when no management API is configured
 * It holds no records; the Registry's snapshot is the source of truth
 */
type Simulator struct {
	latency time.Duration
	now     func() time.Time
}

// Option configures a Simulator
type Option func(*Simulator)

// WithLatency sets the artificial delay of every call, zero disables it
func WithLatency(d time.Duration) Option {
	return func(s *Simulator) {
		if d >= 0 {
			s.latency = d
		}
	}
}

// WithClock replaces the clock used for timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Simulator) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSimulator creates a Simulator
func NewSimulator(opts ...Option) *Simulator {
	s := &Simulator{latency: DefaultLatency, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulator) wait(ctx context.Context) error {
	if s.latency == 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("simulated call: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}

// List returns nil, there is no authoritative set outside the Registry
func (s *Simulator) List(ctx context.Context) ([]webhook.Webhook, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return nil, nil
}

// Create assigns an id and timestamps
func (s *Simulator) Create(ctx context.Context, wh webhook.Webhook) (webhook.Webhook, error) {
	if err := s.wait(ctx); err != nil {
		return webhook.Webhook{}, err
	}
	now := s.now()
	created := wh.Clone()
	created.ID = uuid.NewString()
	created.CreatedAt = now
	created.UpdatedAt = now
	return created, nil
}

// Update stamps UpdatedAt
func (s *Simulator) Update(ctx context.Context, wh webhook.Webhook) (webhook.Webhook, error) {
	if err := s.wait(ctx); err != nil {
		return webhook.Webhook{}, err
	}
	updated := wh.Clone()
	updated.UpdatedAt = s.now()
	return updated, nil
}

// Delete always succeeds once the latency elapsed
func (s *Simulator) Delete(ctx context.Context, id string) error {
	return s.wait(ctx)
}
