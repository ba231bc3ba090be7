package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lamchun/academy-backend/internal/dto"
	"github.com/lamchun/academy-backend/internal/services"
)

const defaultUserLimit = 50

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	limit := queryLimit(c, defaultUserLimit)

	docs, err := h.userService.List(c.UserContext(), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(serializeDocs(docs))
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	id, err := h.userService.Create(c.UserContext(), &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateResponse{ID: id})
}
