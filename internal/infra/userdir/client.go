// Package userdir implements the user existence check against the external
// user-identity service.
package userdir

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"content-service/internal/domain"
	"content-service/internal/infra/upstream"
)

// Client implements domain.UserDirectory.
type Client struct {
	client *resty.Client
	cb     *gobreaker.CircuitBreaker[*resty.Response]
	logger *zap.Logger
}

// New creates a new user service client.
func New(cfg upstream.ClientConfig, logger *zap.Logger) *Client {
	return &Client{
		client: upstream.NewRestyClient(cfg),
		cb:     upstream.NewCircuitBreaker[*resty.Response]("userservice", cfg.CB),
		logger: logger,
	}
}

// Exists reports whether the user id is known to the user service.
//
// A 2xx response means the user exists; a 4xx response is a definitive
// negative answer. Transport failures, timeouts and 5xx responses return
// ErrUserLookupUnavailable so callers can tell an outage from a genuinely
// missing user. The gate stays closed either way.
func (c *Client) Exists(ctx context.Context, userID string) (bool, error) {
	resp, err := c.cb.Execute(func() (*resty.Response, error) {
		r, err := c.client.R().
			SetContext(ctx).
			SetPathParam("userID", userID).
			Get("/user/{userID}")
		if err != nil {
			return nil, err
		}
		if r.StatusCode() >= 500 {
			return nil, fmt.Errorf("user service returned status %d", r.StatusCode())
		}

		return r, nil
	})
	if err != nil {
		c.logger.Warn("user existence check failed",
			zap.String("user_id", userID),
			zap.Error(err),
			zap.String("state", c.cb.State().String()),
		)

		return false, fmt.Errorf("%w: %v", domain.ErrUserLookupUnavailable, err)
	}

	if resp.IsError() {
		c.logger.Debug("user not found",
			zap.String("user_id", userID),
			zap.Int("status", resp.StatusCode()),
		)

		return false, nil
	}

	return true, nil
}
