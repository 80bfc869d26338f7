// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
)

// HealthChecker reports whether an upstream dependency is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// NewHealthCheck creates a Fiber healthcheck middleware with Kubernetes-style endpoints.
//
// Endpoints:
//   - GET /livez  - Liveness probe (app is running)
//   - GET /readyz - Readiness probe (DB and registered upstreams reachable)
//
// This middleware should be registered BEFORE other routes.
func NewHealthCheck(dbProbe func() error, deps ...HealthChecker) fiber.Handler {
	return healthcheck.New(healthcheck.Config{
		LivenessEndpoint: "/livez",
		LivenessProbe: func(_ *fiber.Ctx) bool {
			return true
		},

		ReadinessEndpoint: "/readyz",
		ReadinessProbe: func(c *fiber.Ctx) bool {
			if dbProbe == nil || dbProbe() != nil {
				return false
			}
			for _, dep := range deps {
				if dep.HealthCheck(c.Context()) != nil {
					return false
				}
			}

			return true
		},
	})
}
