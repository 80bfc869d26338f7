package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"content-service/internal/app/service"
	"content-service/internal/transport/httpserver/dto"
	"content-service/internal/validator"
)

// ContentHandler handles content CRUD requests.
type ContentHandler struct {
	service   *service.ContentService
	validator *validator.Validator
	logger    *zap.Logger
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(svc *service.ContentService, v *validator.Validator, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{
		service:   svc,
		validator: v,
		logger:    logger,
	}
}

// Import handles POST /content
// Accepts a multipart CSV upload under the "file" field, or a single JSON
// row as the request body.
func (h *ContentHandler) Import(c *fiber.Ctx) error {
	userID := c.Query("user_id")

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		return h.createSingle(c, userID)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "multipart field \"file\" is required",
			Code:  "MISSING_FILE",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "uploaded file is unreadable",
			Code:  "MISSING_FILE",
		})
	}
	defer file.Close()

	processed, err := h.service.Import(c.Context(), userID, file)
	if err != nil {
		return fail(c, h.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ImportResponse{Processed: processed})
}

// createSingle imports one JSON row through the same upsert path.
func (h *ContentHandler) createSingle(c *fiber.Ctx, userID string) error {
	var req dto.CreateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
			Code:  "VALIDATION_ERROR",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation failed",
			Code:    "VALIDATION_ERROR",
			Details: err,
		})
	}

	csv := "title,story,publishedDate\n" + csvLine(req.Title, req.Story, req.PublishedDate)
	processed, err := h.service.Import(c.Context(), userID, strings.NewReader(csv))
	if err != nil {
		return fail(c, h.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ImportResponse{Processed: processed})
}

// Get handles GET /content/:title
func (h *ContentHandler) Get(c *fiber.Ctx) error {
	content, err := h.service.Get(c.Context(), c.Query("user_id"), c.Params("title"))
	if err != nil {
		return fail(c, h.logger, err)
	}

	return c.JSON(dto.FromDomainContent(content))
}

// Update handles PATCH /content/:title
func (h *ContentHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateStoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
			Code:  "VALIDATION_ERROR",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation failed",
			Code:    "VALIDATION_ERROR",
			Details: err,
		})
	}

	content, err := h.service.UpdateStory(c.Context(), c.Query("user_id"), c.Params("title"), req.Story)
	if err != nil {
		return fail(c, h.logger, err)
	}

	return c.JSON(dto.FromDomainContent(content))
}

// Delete handles DELETE /content/:title
func (h *ContentHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Query("user_id"), c.Params("title")); err != nil {
		return fail(c, h.logger, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// csvLine quotes the three fields so commas and quotes in the story survive
// the round trip through the importer.
func csvLine(fields ...string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}

	return strings.Join(quoted, ",") + "\n"
}
