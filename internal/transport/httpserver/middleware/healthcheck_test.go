package middleware

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDep struct {
	err error
}

func (f fakeDep) HealthCheck(_ context.Context) error {
	return f.err
}

func probeStatus(t *testing.T, handler fiber.Handler, path string) int {
	t.Helper()

	app := fiber.New()
	app.Use(handler)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	return resp.StatusCode
}

func TestHealthCheck_ReadyWhenAllProbesPass(t *testing.T) {
	h := NewHealthCheck(func() error { return nil }, fakeDep{})

	assert.Equal(t, fiber.StatusOK, probeStatus(t, h, "/readyz"))
}

func TestHealthCheck_NotReadyWhenDatabaseDown(t *testing.T) {
	h := NewHealthCheck(func() error { return errors.New("connection refused") })

	assert.Equal(t, fiber.StatusServiceUnavailable, probeStatus(t, h, "/readyz"))
}

func TestHealthCheck_NotReadyWhenUpstreamDown(t *testing.T) {
	h := NewHealthCheck(func() error { return nil }, fakeDep{err: errors.New("timeout")})

	assert.Equal(t, fiber.StatusServiceUnavailable, probeStatus(t, h, "/readyz"))
}

func TestHealthCheck_LivenessIgnoresDependencies(t *testing.T) {
	h := NewHealthCheck(func() error { return errors.New("down") }, fakeDep{err: errors.New("down")})

	assert.Equal(t, fiber.StatusOK, probeStatus(t, h, "/livez"))
}
