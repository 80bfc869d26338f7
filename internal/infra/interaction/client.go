// Package interaction implements the engagement source client against the
// user-interaction service.
package interaction

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"content-service/internal/domain"
	"content-service/internal/infra/upstream"
)

// Endpoint is the API path for the engagement listing.
const Endpoint = "/contents"

// Client implements domain.InteractionClient.
type Client struct {
	client *resty.Client
	cb     *gobreaker.CircuitBreaker[*resty.Response]
	logger *zap.Logger
}

// New creates a new interaction service client.
func New(cfg upstream.ClientConfig, logger *zap.Logger) *Client {
	return &Client{
		client: upstream.NewRestyClient(cfg),
		cb:     upstream.NewCircuitBreaker[*resty.Response]("interaction", cfg.CB),
		logger: logger,
	}
}

// FetchEngagementPage retrieves one page of engagement records. Any
// non-success response is a hard failure; an empty page is a success. The
// returned set may be shorter than a full page and may contain titles this
// service never stored.
func (c *Client) FetchEngagementPage(ctx context.Context, page domain.Page) ([]domain.EngagementRecord, error) {
	resp, err := c.cb.Execute(func() (*resty.Response, error) {
		var result []engagementItem
		r, err := c.client.R().
			SetContext(ctx).
			SetQueryParam("page", fmt.Sprintf("%d", page)).
			SetResult(&result).
			Get(Endpoint)
		if err != nil {
			return nil, err
		}
		if r.IsError() {
			return nil, fmt.Errorf("interaction service returned status %d", r.StatusCode())
		}

		return r, nil
	})
	if err != nil {
		c.logger.Warn("engagement page fetch failed",
			zap.Int("page", int(page)),
			zap.Error(err),
			zap.String("state", c.cb.State().String()),
		)

		return nil, fmt.Errorf("%w: %v", domain.ErrInteractionUnavailable, err)
	}

	items := *resp.Result().(*[]engagementItem)

	c.logger.Debug("engagement page fetched",
		zap.Int("page", int(page)),
		zap.Int("count", len(items)),
	)

	return toDomain(items), nil
}

// HealthCheck verifies the interaction service is accessible.
func (c *Client) HealthCheck(ctx context.Context) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/health")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("health check returned status %d", resp.StatusCode())
	}

	return nil
}
