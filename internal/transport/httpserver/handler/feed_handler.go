package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"content-service/internal/app/service"
	"content-service/internal/transport/httpserver/dto"
)

// FeedHandler handles the listing views.
type FeedHandler struct {
	service *service.FeedService
	logger  *zap.Logger
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(svc *service.FeedService, logger *zap.Logger) *FeedHandler {
	return &FeedHandler{
		service: svc,
		logger:  logger,
	}
}

// Latest handles GET /content/new
func (h *FeedHandler) Latest(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return fail(c, h.logger, err)
	}

	contents, err := h.service.Latest(c.Context(), c.Query("user_id"), page)
	if err != nil {
		return fail(c, h.logger, err)
	}

	return c.JSON(dto.FromContents(contents, page))
}

// Top handles GET /content/top
func (h *FeedHandler) Top(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return fail(c, h.logger, err)
	}

	ranked, err := h.service.Top(c.Context(), c.Query("user_id"), page)
	if err != nil {
		return fail(c, h.logger, err)
	}

	return c.JSON(dto.FromRanked(ranked, page))
}
