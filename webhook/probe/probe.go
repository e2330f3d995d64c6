package probe

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptrace"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/marcelsud/webhook-console/webhook"
	"github.com/marcelsud/webhook-console/webhook/payload"
	"github.com/marcelsud/webhook-console/webhook/signature"
)

const (
	// DefaultTimeout bounds a single probe
	DefaultTimeout = 30 * time.Second

	// UserAgent identifies console probes to receivers
	UserAgent = "webhook-console/1.0"

	// maxResponseBody caps how much of the receiver's answer is kept
	maxResponseBody = 64 << 10
)

/* Engine sends one synthetic POST per call and classifies the outcome
 * Uses pointer semantics as it's an API, not data
 */
type Engine struct {
	client  *http.Client
	timeout time.Duration
	now     func() time.Time
}

// Option configures an Engine
type Option func(*Engine)

// WithTimeout overrides the per-probe deadline
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithHTTPClient replaces the HTTP client used for probes
func WithHTTPClient(c *http.Client) Option {
	return func(e *Engine) {
		if c != nil {
			e.client = c
		}
	}
}

// WithClock replaces the clock used for payload timestamps
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// New creates an Engine
func New(opts ...Option) *Engine {
	e := &Engine{
		client: &http.Client{
			// redirects count as delivered, the receiver answered
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		timeout: DefaultTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

/* Probe delivers a test payload to target.URL
 * Delivery failures are returned as a diagnosed result with a nil error.
 * Only failures to build the request itself are returned as errors
 */
func (e *Engine) Probe(ctx context.Context, target webhook.ProbeTarget) (webhook.ProbeResult, error) {
	test, err := payload.NewTest(target.WebhookID, target.WebhookName, e.now())
	if err != nil {
		return webhook.ProbeResult{}, fmt.Errorf("building test payload: %w", err)
	}
	body, err := test.Bytes()
	if err != nil {
		return webhook.ProbeResult{}, fmt.Errorf("building test payload: %w", err)
	}

	if err := checkURL(target.URL); err != nil {
		return diagnose(webhook.FailureValidation, 0, err.Error(), "", body, nil, nil, 0), nil
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	stages := &tracer{}
	ctx = httptrace.WithClientTrace(ctx, stages.trace())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.URL, bytes.NewReader(body))
	if err != nil {
		return webhook.ProbeResult{}, fmt.Errorf("creating request: %w", err)
	}
	if err := setHeaders(req, target, body); err != nil {
		return webhook.ProbeResult{}, err
	}

	started := time.Now()
	resp, err := e.client.Do(req)
	if err != nil {
		elapsed := time.Since(started)
		fp, code := classifyError(err)
		info := stages.info()
		return diagnose(fp, 0, err.Error(), code, body, nil, &info, elapsed), nil
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	elapsed := time.Since(started)
	if err != nil {
		// the answer never completed, the status line alone is not a delivery
		fp, code := classifyError(err)
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			fp, code = webhook.FailureTimeout, "ETIMEDOUT"
		}
		if fp != webhook.FailureTimeout {
			fp = webhook.FailureNetwork
		}
		info := stages.info()
		result := diagnose(fp, resp.StatusCode, fmt.Sprintf("reading response: %v", err), code, body, flatten(resp.Header), &info, elapsed)
		result.Response = string(text)
		return result, nil
	}

	fp := classifyStatus(resp.StatusCode)
	if fp == "" {
		return webhook.ProbeResult{
			Success:      true,
			StatusCode:   resp.StatusCode,
			ResponseTime: elapsed.Milliseconds(),
			Response:     string(text),
		}, nil
	}

	info := stages.info()
	message := fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	result := diagnose(fp, resp.StatusCode, message, strconv.Itoa(resp.StatusCode), body, flatten(resp.Header), &info, elapsed)
	result.Response = string(text)
	return result, nil
}

func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid webhook URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported URL scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("webhook URL has no host")
	}
	return nil
}

// setHeaders applies the fixed probe headers, then the webhook's custom ones
func setHeaders(req *http.Request, target webhook.ProbeTarget, body []byte) error {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("X-Webhook-Test", "true")
	req.Header.Set("X-Webhook-ID", target.WebhookID)

	if target.Secret != "" {
		sig, err := signature.Sign(target.Secret, body)
		if err != nil {
			return fmt.Errorf("signing test payload: %w", err)
		}
		req.Header.Set(signature.HeaderName, sig)
	}

	for k, v := range target.Headers {
		if k == "" {
			continue
		}
		req.Header.Set(k, v)
	}
	return nil
}

func flatten(h http.Header) map[string]string {
	if len(h) == 0 {
		return nil
	}
	out := make(map[string]string, len(h))
	for k := range h {
		out[k] = h.Get(k)
	}
	return out
}

// tracer records which request stages completed
type tracer struct {
	mu   sync.Mutex
	seen webhook.NetworkInfo
}

func (t *tracer) mark(f func(*webhook.NetworkInfo)) {
	t.mu.Lock()
	f(&t.seen)
	t.mu.Unlock()
}

func (t *tracer) info() webhook.NetworkInfo {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.seen
}

func (t *tracer) trace() *httptrace.ClientTrace {
	return &httptrace.ClientTrace{
		DNSDone: func(i httptrace.DNSDoneInfo) {
			if i.Err == nil {
				t.mark(func(n *webhook.NetworkInfo) { n.DNSResolution = true })
			}
		},
		// IP literals skip DNS entirely, the address is known once dialing starts
		ConnectStart: func(string, string) {
			t.mark(func(n *webhook.NetworkInfo) { n.DNSResolution = true })
		},
		ConnectDone: func(_, _ string, err error) {
			if err == nil {
				t.mark(func(n *webhook.NetworkInfo) { n.ConnectionEstablished = true })
			}
		},
		GotConn: func(httptrace.GotConnInfo) {
			t.mark(func(n *webhook.NetworkInfo) {
				n.DNSResolution = true
				n.ConnectionEstablished = true
			})
		},
		TLSHandshakeDone: func(_ tls.ConnectionState, err error) {
			if err == nil {
				t.mark(func(n *webhook.NetworkInfo) { n.TLSHandshake = true })
			}
		},
		WroteRequest: func(i httptrace.WroteRequestInfo) {
			if i.Err == nil {
				t.mark(func(n *webhook.NetworkInfo) { n.RequestSent = true })
			}
		},
		GotFirstResponseByte: func() {
			t.mark(func(n *webhook.NetworkInfo) { n.ResponseReceived = true })
		},
	}
}
