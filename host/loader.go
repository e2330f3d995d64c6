package host

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// EnvironmentSetter receives the environment id reported by the host
type EnvironmentSetter interface {
	SetEnvironmentIDIfEmpty(id string) bool
}

/* Loader fetches the host context once in the background
 * Until it finishes, and after a failure, Current reports ErrUnavailable
 */
type Loader struct {
	provider Provider
	target   EnvironmentSetter
	logger   zerolog.Logger

	mu     sync.RWMutex
	loaded *Context
	err    error
	done   chan struct{}
}

// NewLoader creates a Loader, call Start to begin loading
func NewLoader(provider Provider, target EnvironmentSetter, logger zerolog.Logger) *Loader {
	return &Loader{
		provider: provider,
		target:   target,
		logger:   logger,
		err:      ErrUnavailable,
		done:     make(chan struct{}),
	}
}

// Start loads the context in a goroutine bounded by timeout
func (l *Loader) Start(ctx context.Context, timeout time.Duration) {
	go func() {
		defer close(l.done)
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		c, err := l.provider.Context(ctx)

		l.mu.Lock()
		if err != nil {
			l.err = err
		} else {
			l.loaded, l.err = &c, nil
		}
		l.mu.Unlock()

		if err != nil {
			l.logger.Warn().Err(err).Msg("host context not available, no environment id known")
			return
		}
		if l.target != nil && l.target.SetEnvironmentIDIfEmpty(c.EnvironmentID) {
			l.logger.Info().Str("environment_id", c.EnvironmentID).Msg("environment id taken from host context")
		}
	}()
}

// Done is closed once loading finished
func (l *Loader) Done() <-chan struct{} {
	return l.done
}

// Current returns the loaded context
func (l *Loader) Current() (Context, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.loaded == nil {
		return Context{}, l.err
	}
	return *l.loaded, nil
}
