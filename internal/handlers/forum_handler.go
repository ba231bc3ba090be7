package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lamchun/academy-backend/internal/dto"
	"github.com/lamchun/academy-backend/internal/services"
)

const defaultPostLimit = 50

type ForumHandler struct {
	forumService *services.ForumService
}

func NewForumHandler(forumService *services.ForumService) *ForumHandler {
	return &ForumHandler{forumService: forumService}
}

func (h *ForumHandler) ListPosts(c *fiber.Ctx) error {
	limit := queryLimit(c, defaultPostLimit)

	docs, err := h.forumService.ListPosts(c.UserContext(), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(serializeDocs(docs))
}

func (h *ForumHandler) CreatePost(c *fiber.Ctx) error {
	var req dto.CreateForumPostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	id, err := h.forumService.CreatePost(c.UserContext(), &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateResponse{ID: id})
}
