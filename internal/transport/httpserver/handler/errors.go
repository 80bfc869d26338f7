// Package handler provides HTTP handlers for the API.
package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"content-service/internal/domain"
	"content-service/internal/transport/httpserver/dto"
)

// mapError translates a domain error into an HTTP status and stable code.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidPage):
		return fiber.StatusBadRequest, "INVALID_PAGE"
	case errors.Is(err, domain.ErrInvalidImport):
		return fiber.StatusBadRequest, "INVALID_IMPORT"
	case errors.Is(err, domain.ErrUserIDRequired):
		return fiber.StatusBadRequest, "MISSING_USER_ID"
	case errors.Is(err, domain.ErrContentNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, "USER_NOT_FOUND"
	case errors.Is(err, domain.ErrUserLookupUnavailable):
		return fiber.StatusServiceUnavailable, "USER_SERVICE_UNAVAILABLE"
	case errors.Is(err, domain.ErrInteractionUnavailable):
		return fiber.StatusBadGateway, "UPSTREAM_ERROR"
	default:
		return fiber.StatusInternalServerError, "STORAGE_ERROR"
	}
}

// fail writes the error payload for err, logging server-side failures.
func fail(c *fiber.Ctx, logger *zap.Logger, err error) error {
	status, code := mapError(err)

	message := err.Error()
	if status >= 500 {
		logger.Error("request failed",
			zap.String("path", c.Path()),
			zap.String("code", code),
			zap.Error(err),
		)
		message = "request failed"
	}

	return c.Status(status).JSON(dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// parsePage reads the page query parameter, defaulting to the first page.
// Non-numeric input is an invalid page, same as zero or negative values.
func parsePage(c *fiber.Ctx) (domain.Page, error) {
	raw := c.Query("page", "1")

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ErrInvalidPage
	}

	page := domain.Page(n)
	if err := page.Validate(); err != nil {
		return 0, err
	}

	return page, nil
}
