// Package workflow is the client for the downstream workflow engine (n8n).
// Order events are delivered as webhook POSTs; delivery is best-effort and
// the caller decides whether a failure is fatal.
package workflow

//go:generate mockgen -destination=mock/mock_client.go -package=workflowmock github.com/pixself/pixself-api/internal/clients/workflow Client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pixself/pixself-api/internal/entities"
	"github.com/pixself/pixself-api/internal/errors"
)

// Client defines the interface for workflow engine interactions
type Client interface {
	// TriggerOrderCreated notifies the workflow engine of a new order
	TriggerOrderCreated(ctx context.Context, order *entities.Order) error
}

const defaultTriggerTimeout = 10 * time.Second

type httpClient struct {
	webhookURL string
	client     *http.Client
}

// Config configures the HTTP workflow client
type Config struct {
	// WebhookURL is the n8n trigger endpoint
	WebhookURL string
	// Timeout bounds each delivery; defaults to 10s
	Timeout time.Duration
}

// Validate ensures all required settings are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.WebhookURL == "" {
		vb.RequiredField("WebhookURL")
	}

	return vb.Build()
}

// NewHTTPClient creates a webhook-backed workflow client
func NewHTTPClient(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTriggerTimeout
	}

	return &httpClient{
		webhookURL: cfg.WebhookURL,
		client:     &http.Client{Timeout: timeout},
	}, nil
}

type noopClient struct{}

func (noopClient) TriggerOrderCreated(_ context.Context, _ *entities.Order) error {
	return nil
}

// Noop returns a client that drops all events. Used when no webhook URL is
// configured.
func Noop() Client {
	return noopClient{}
}

// orderCreatedEvent is the webhook payload shape
type orderCreatedEvent struct {
	Event string          `json:"event"`
	Order *entities.Order `json:"order"`
}

func (c *httpClient) TriggerOrderCreated(ctx context.Context, order *entities.Order) error {
	if order == nil {
		return errors.InvalidArgument("order cannot be nil")
	}

	payload, err := json.Marshal(orderCreatedEvent{
		Event: "order.created",
		Order: order,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to marshal order event")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrapf(err, "failed to build webhook request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to deliver order webhook")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Unavailablef("order webhook returned status %d", resp.StatusCode)
	}
	return nil
}
