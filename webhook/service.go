package webhook

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultEnvironmentID marks records created while no environment id was known
const DefaultEnvironmentID = "default"

// ErrNotConfigured is returned by CheckConnection outside of API mode
var ErrNotConfigured = errors.New("management API key and environment id are required")

/* Registry represents the business logic layer
 * Uses pointer semantics as it's an API, not data
 */

// UseCase defines the operations the console exposes
type UseCase interface {
	List(ctx context.Context) ([]Webhook, error)
	Get(id string) (Webhook, error)
	Create(ctx context.Context, form FormData) (Webhook, error)
	Update(ctx context.Context, id string, form FormData) (Webhook, error)
	Delete(ctx context.Context, id string) error
	Test(ctx context.Context, id string) (TestResult, error)
	Stats() Stats
	TestResults(webhookID string) []TestResult
	Mode() Mode
	CheckConnection(ctx context.Context) error
}

/* snapshot is replaced whole on every commit
 * Readers get copies, so they never observe a partial update
 */
type snapshot struct {
	webhooks []Webhook
	results  []TestResult
	stats    Stats
}

type Registry struct {
	creds  Credentials
	local  Backend
	remote BackendFactory
	prober Prober
	logger zerolog.Logger
	now    func() time.Time

	mu        sync.Mutex
	state     snapshot
	inFlight  map[string]struct{}
	observers []Observer
}

// Option configures a Registry
type Option func(*Registry)

// WithRemote sets the factory used in API mode
func WithRemote(factory BackendFactory) Option {
	return func(r *Registry) {
		r.remote = factory
	}
}

// WithLogger sets the structured logger
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithClock overrides time.Now, used by tests
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// WithObserver registers an observer at construction time
func WithObserver(o Observer) Option {
	return func(r *Registry) {
		r.observers = append(r.observers, o)
	}
}

// NewRegistry creates a new webhook registry with dependency injection
func NewRegistry(creds Credentials, local Backend, prober Prober, opts ...Option) *Registry {
	r := &Registry{
		creds:    creds,
		local:    local,
		prober:   prober,
		logger:   zerolog.Nop(),
		now:      time.Now,
		inFlight: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddObserver registers an observer notified after every test
func (r *Registry) AddObserver(o Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, o)
}

// Mode derives the execution mode from the current settings
func (r *Registry) Mode() Mode {
	if r.creds == nil || r.remote == nil || strings.TrimSpace(r.creds.APIKey()) == "" {
		return ModeFallback
	}
	if strings.TrimSpace(r.creds.EnvironmentID()) == "" {
		return ModeUnknown
	}
	return ModeAPI
}

func (r *Registry) backend() (Backend, Mode) {
	mode := r.Mode()
	if mode.Remote() {
		return r.remote(strings.TrimSpace(r.creds.APIKey()), strings.TrimSpace(r.creds.EnvironmentID())), mode
	}
	return r.local, mode
}

func (r *Registry) environmentID() string {
	if r.creds != nil {
		if env := strings.TrimSpace(r.creds.EnvironmentID()); env != "" {
			return env
		}
	}
	return DefaultEnvironmentID
}

/* List returns the known webhooks
 * In API mode the set is refreshed first; a failed refresh keeps the previous set
 */
func (r *Registry) List(ctx context.Context) ([]Webhook, error) {
	backend, mode := r.backend()
	if !mode.Remote() {
		return r.webhooks(), nil
	}

	fetched, err := backend.List(ctx)
	if err != nil {
		r.logger.Warn().Err(err).Str("mode", mode.String()).Msg("refreshing webhooks failed, keeping previous set")
		return r.webhooks(), &BackendError{Op: "listing webhooks", Err: err}
	}

	r.mu.Lock()
	merged := mergeSession(r.state.webhooks, fetched)
	r.commit(merged, r.state.results, true)
	out := cloneWebhooks(r.state.webhooks)
	r.mu.Unlock()

	r.logger.Debug().Int("count", len(out)).Msg("webhooks refreshed")
	return out, nil
}

// Get returns a single webhook from the current set
func (r *Registry) Get(id string) (Webhook, error) {
	wh, ok := r.find(id)
	if !ok {
		return Webhook{}, fmt.Errorf("getting webhook %s: %w", id, ErrNotFound)
	}
	return wh, nil
}

// Create validates the form and stores a new webhook
func (r *Registry) Create(ctx context.Context, form FormData) (Webhook, error) {
	if err := ValidateForm(form); err != nil {
		return Webhook{}, err
	}

	now := r.now()
	wh := Webhook{
		Name:          form.Name,
		URL:           form.URL,
		EnvironmentID: r.environmentID(),
		Triggers:      TriggersFor(form.Triggers),
		Headers:       copyHeaders(form.Headers),
		Secret:        form.Secret,
		IsActive:      form.IsActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	backend, mode := r.backend()
	created, err := backend.Create(ctx, wh)
	if err != nil {
		r.logger.Error().Err(err).Str("mode", mode.String()).Msg("creating webhook failed")
		return Webhook{}, &BackendError{Op: "creating webhook", Err: err}
	}
	if created.ID == "" {
		return Webhook{}, &BackendError{Op: "creating webhook", Err: errors.New("backend returned a webhook without id")}
	}
	if created.EnvironmentID == "" {
		created.EnvironmentID = wh.EnvironmentID
	}

	r.mu.Lock()
	webhooks := append(cloneWebhooks(r.state.webhooks), created.Clone())
	r.commit(webhooks, r.state.results, true)
	r.mu.Unlock()

	r.logger.Info().Str("webhook_id", created.ID).Str("mode", mode.String()).Msg("webhook created")
	return created.Clone(), nil
}

/* Update merges the form onto an existing webhook
 * Counters and CreatedAt are preserved
 */
func (r *Registry) Update(ctx context.Context, id string, form FormData) (Webhook, error) {
	if err := ValidateForm(form); err != nil {
		return Webhook{}, err
	}
	existing, ok := r.find(id)
	if !ok {
		return Webhook{}, fmt.Errorf("updating webhook %s: %w", id, ErrNotFound)
	}

	backend, mode := r.backend()
	stored, err := backend.Update(ctx, existing.apply(form, r.now()))
	if err != nil {
		r.logger.Error().Err(err).Str("webhook_id", id).Str("mode", mode.String()).Msg("updating webhook failed")
		return Webhook{}, &BackendError{Op: "updating webhook", Err: err}
	}

	r.mu.Lock()
	idx := indexOf(r.state.webhooks, id)
	if idx < 0 {
		r.mu.Unlock()
		return Webhook{}, fmt.Errorf("updating webhook %s: %w", id, ErrNotFound)
	}
	current := r.state.webhooks[idx]
	stored = keepSession(current, stored)
	stored.ID = id
	if stored.Secret == "" {
		stored.Secret = form.Secret
	}
	webhooks := cloneWebhooks(r.state.webhooks)
	webhooks[idx] = stored.Clone()
	r.commit(webhooks, r.state.results, current.IsActive != stored.IsActive || current.DeliveryAttempts != stored.DeliveryAttempts)
	r.mu.Unlock()

	r.logger.Info().Str("webhook_id", id).Str("mode", mode.String()).Msg("webhook updated")
	return stored.Clone(), nil
}

// Delete removes a webhook
func (r *Registry) Delete(ctx context.Context, id string) error {
	if _, ok := r.find(id); !ok {
		return fmt.Errorf("deleting webhook %s: %w", id, ErrNotFound)
	}

	backend, mode := r.backend()
	if err := backend.Delete(ctx, id); err != nil {
		r.logger.Error().Err(err).Str("webhook_id", id).Str("mode", mode.String()).Msg("deleting webhook failed")
		return &BackendError{Op: "deleting webhook", Err: err}
	}

	r.mu.Lock()
	webhooks := make([]Webhook, 0, len(r.state.webhooks))
	for _, w := range r.state.webhooks {
		if w.ID != id {
			webhooks = append(webhooks, w.Clone())
		}
	}
	r.commit(webhooks, r.state.results, true)
	r.mu.Unlock()

	r.logger.Info().Str("webhook_id", id).Str("mode", mode.String()).Msg("webhook deleted")
	return nil
}

/* Test probes the webhook URL once and records the outcome
 * A failed delivery is a successful return; only prober errors are returned as errors,
 * and even then the result is recorded first
 */
func (r *Registry) Test(ctx context.Context, id string) (TestResult, error) {
	wh, ok := r.find(id)
	if !ok {
		return TestResult{}, &PreconditionError{Err: ErrNotFound}
	}
	if !wh.IsActive {
		return TestResult{}, &PreconditionError{Err: ErrInactive}
	}
	if strings.TrimSpace(wh.URL) == "" {
		return TestResult{}, &PreconditionError{Err: ErrURLRequired}
	}

	r.mu.Lock()
	if _, busy := r.inFlight[id]; busy {
		r.mu.Unlock()
		return TestResult{}, ErrTestInProgress
	}
	r.inFlight[id] = struct{}{}
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		delete(r.inFlight, id)
		r.mu.Unlock()
	}()

	// the engine's own deadline is the only thing that ends a probe
	ctx = context.WithoutCancel(ctx)

	started := time.Now()
	outcome, probeErr := r.probe(ctx, ProbeTarget{
		URL:         wh.URL,
		Headers:     copyHeaders(wh.Headers),
		Secret:      wh.Secret,
		WebhookID:   wh.ID,
		WebhookName: wh.Name,
	})
	if probeErr != nil {
		if !outcome.Diagnosed() {
			outcome = unknownFailure(probeErr, time.Since(started))
		}
		outcome.Success = false
	}

	result := TestResult{
		ID:          uuid.New().String(),
		WebhookID:   id,
		Timestamp:   r.now(),
		ProbeResult: outcome,
	}

	r.mu.Lock()
	webhooks := cloneWebhooks(r.state.webhooks)
	if idx := indexOf(webhooks, id); idx >= 0 {
		webhooks[idx] = recordAttempt(webhooks[idx], result)
	}
	results := append([]TestResult{result}, r.state.results...)
	r.commit(webhooks, results, true)
	observers := append([]Observer(nil), r.observers...)
	r.mu.Unlock()

	for _, o := range observers {
		o.ProbeCompleted(ctx, result.Clone())
	}

	level := zerolog.InfoLevel
	if !result.Success {
		level = zerolog.WarnLevel
	}
	r.logger.WithLevel(level).
		Str("webhook_id", id).
		Int("status_code", result.StatusCode).
		Int64("response_time_ms", result.ResponseTime).
		Bool("success", result.Success).
		Str("failure_point", string(result.FailurePoint)).
		Bool("transport_failure", result.FailurePoint.IsTransport()).
		Msg("webhook tested")

	if probeErr != nil {
		return result.Clone(), fmt.Errorf("testing webhook %s: %w", id, probeErr)
	}
	return result.Clone(), nil
}

func (r *Registry) probe(ctx context.Context, target ProbeTarget) (result ProbeResult, err error) {
	defer func() {
		if p := recover(); p != nil {
			result = ProbeResult{}
			err = fmt.Errorf("probe panicked: %v", p)
		}
	}()
	return r.prober.Probe(ctx, target)
}

// Stats returns the aggregate over the current set
func (r *Registry) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.stats
}

// TestResults returns the history, most recent first; an empty id returns all of it
func (r *Registry) TestResults(webhookID string) []TestResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]TestResult, 0, len(r.state.results))
	for _, res := range r.state.results {
		if webhookID == "" || res.WebhookID == webhookID {
			out = append(out, res.Clone())
		}
	}
	return out
}

// CheckConnection performs one remote list call without touching state
func (r *Registry) CheckConnection(ctx context.Context) error {
	backend, mode := r.backend()
	if !mode.Remote() {
		return ErrNotConfigured
	}
	if _, err := backend.List(ctx); err != nil {
		return &BackendError{Op: "checking connection", Err: err}
	}
	return nil
}

// commit must be called with mu held
func (r *Registry) commit(webhooks []Webhook, results []TestResult, recompute bool) {
	next := snapshot{webhooks: webhooks, results: results, stats: r.state.stats}
	if recompute {
		next.stats = ComputeStats(webhooks, results)
	}
	r.state = next
}

func (r *Registry) webhooks() []Webhook {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneWebhooks(r.state.webhooks)
}

func (r *Registry) find(id string) (Webhook, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := indexOf(r.state.webhooks, id)
	if idx < 0 {
		return Webhook{}, false
	}
	return r.state.webhooks[idx].Clone(), true
}

func recordAttempt(wh Webhook, result TestResult) Webhook {
	wh.DeliveryAttempts++
	if result.Success {
		wh.SuccessfulDeliveries++
	} else {
		wh.FailedDeliveries++
	}
	triggered := result.Timestamp
	if wh.LastTriggered != nil && wh.LastTriggered.After(triggered) {
		triggered = *wh.LastTriggered
	}
	wh.LastTriggered = &triggered
	return wh
}

// mergeSession keeps session counters on records refreshed from the backend
func mergeSession(previous, fetched []Webhook) []Webhook {
	byID := make(map[string]Webhook, len(previous))
	for _, w := range previous {
		byID[w.ID] = w
	}
	merged := make([]Webhook, 0, len(fetched))
	for _, f := range fetched {
		if p, ok := byID[f.ID]; ok {
			f = keepSession(p, f)
			if f.Secret == "" {
				f.Secret = p.Secret
			}
		}
		merged = append(merged, f.Clone())
	}
	return merged
}

// keepSession never lets counters go backwards and fills fields the backend left empty
func keepSession(prev, next Webhook) Webhook {
	next.DeliveryAttempts = max(prev.DeliveryAttempts, next.DeliveryAttempts)
	next.SuccessfulDeliveries = max(prev.SuccessfulDeliveries, next.SuccessfulDeliveries)
	next.FailedDeliveries = max(prev.FailedDeliveries, next.FailedDeliveries)
	if prev.LastTriggered != nil && (next.LastTriggered == nil || prev.LastTriggered.After(*next.LastTriggered)) {
		t := *prev.LastTriggered
		next.LastTriggered = &t
	}
	if next.CreatedAt.IsZero() {
		next.CreatedAt = prev.CreatedAt
	}
	if next.EnvironmentID == "" {
		next.EnvironmentID = prev.EnvironmentID
	}
	return next
}

func indexOf(webhooks []Webhook, id string) int {
	for i, w := range webhooks {
		if w.ID == id {
			return i
		}
	}
	return -1
}

func cloneWebhooks(webhooks []Webhook) []Webhook {
	out := make([]Webhook, 0, len(webhooks))
	for _, w := range webhooks {
		out = append(out, w.Clone())
	}
	return out
}
