package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lamchun/academy-backend/internal/dto"
	"github.com/lamchun/academy-backend/internal/services"
)

const defaultVideoLimit = 50

type VideoHandler struct {
	videoService *services.VideoService
}

func NewVideoHandler(videoService *services.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

func (h *VideoHandler) List(c *fiber.Ctx) error {
	limit := queryLimit(c, defaultVideoLimit)

	docs, err := h.videoService.List(c.UserContext(), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(serializeDocs(docs))
}

func (h *VideoHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	id, err := h.videoService.Create(c.UserContext(), &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateResponse{ID: id})
}
