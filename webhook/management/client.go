package management

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/marcelsud/webhook-console/webhook"
)

const (
	// DefaultBaseURL is the management API endpoint
	DefaultBaseURL = "https://manage.kontent.ai"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

/* Client talks to the webhooks collection of one environment
 * It implements webhook.Backend
 */
type Client struct {
	apiKey        string
	environmentID string
	baseURL       string
	httpClient    *http.Client
}

// Option configures the client
type Option func(*Client)

// WithBaseURL sets a custom API base URL
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout sets the HTTP client timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient creates a client for the given credential and environment
func NewClient(apiKey, environmentID string, opts ...Option) *Client {
	c := &Client{
		apiKey:        apiKey,
		environmentID: environmentID,
		baseURL:       DefaultBaseURL,
		httpClient:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Factory returns a webhook.BackendFactory building clients with opts
func Factory(opts ...Option) webhook.BackendFactory {
	return func(apiKey, environmentID string) webhook.Backend {
		return NewClient(apiKey, environmentID, opts...)
	}
}

func (c *Client) collection() string {
	return "/v2/projects/" + url.PathEscape(c.environmentID) + "/webhooks"
}

func (c *Client) item(id string) string {
	return c.collection() + "/" + url.PathEscape(id)
}

// List fetches every webhook of the environment
func (c *Client) List(ctx context.Context) ([]webhook.Webhook, error) {
	var items []wireWebhook
	if err := c.get(ctx, c.collection(), &items); err != nil {
		return nil, fmt.Errorf("listing webhooks: %w", err)
	}

	webhooks := make([]webhook.Webhook, 0, len(items))
	for _, item := range items {
		webhooks = append(webhooks, item.toDomain(c.environmentID))
	}
	return webhooks, nil
}

// Create adds a webhook and returns it with the server-assigned id
func (c *Client) Create(ctx context.Context, wh webhook.Webhook) (webhook.Webhook, error) {
	var created wireWebhook
	if err := c.post(ctx, c.collection(), fromDomain(wh), &created); err != nil {
		return webhook.Webhook{}, fmt.Errorf("creating webhook: %w", err)
	}
	return created.toDomain(c.environmentID), nil
}

// Update replaces the webhook identified by wh.ID
func (c *Client) Update(ctx context.Context, wh webhook.Webhook) (webhook.Webhook, error) {
	var updated wireWebhook
	if err := c.put(ctx, c.item(wh.ID), fromDomain(wh), &updated); err != nil {
		return webhook.Webhook{}, fmt.Errorf("updating webhook: %w", err)
	}
	return updated.toDomain(c.environmentID), nil
}

// Delete removes the webhook identified by id
func (c *Client) Delete(ctx context.Context, id string) error {
	if err := c.delete(ctx, c.item(id)); err != nil {
		return fmt.Errorf("deleting webhook: %w", err)
	}
	return nil
}
