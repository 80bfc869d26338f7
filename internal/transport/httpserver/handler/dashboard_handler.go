package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"content-service/internal/app/service"
)

// DashboardHandler handles dashboard-related HTTP requests.
type DashboardHandler struct {
	contentService *service.ContentService
	logger         *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(svc *service.ContentService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		contentService: svc,
		logger:         logger,
	}
}

// Render handles GET /dashboard
// Renders the dashboard HTML page using Fiber's template engine.
func (h *DashboardHandler) Render(c *fiber.Ctx) error {
	count, _ := h.contentService.Count(c.Context())

	return c.Render("pages/dashboard", fiber.Map{
		"Title":        "Content Service Dashboard",
		"ContentCount": count,
	}, "layouts/base")
}
