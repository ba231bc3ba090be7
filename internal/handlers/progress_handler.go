package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lamchun/academy-backend/internal/dto"
	"github.com/lamchun/academy-backend/internal/services"
)

const defaultProgressLimit = 200

type ProgressHandler struct {
	progressService *services.ProgressService
}

func NewProgressHandler(progressService *services.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

func (h *ProgressHandler) ListForUser(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	limit := queryLimit(c, defaultProgressLimit)

	docs, err := h.progressService.ListForUser(c.UserContext(), userID, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(serializeDocs(docs))
}

func (h *ProgressHandler) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	id, err := h.progressService.Upsert(c.UserContext(), &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.CreateResponse{ID: id})
}
