package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lamchun/academy-backend/internal/schema"
)

type SchemaHandler struct{}

func NewSchemaHandler() *SchemaHandler {
	return &SchemaHandler{}
}

// Get serves the static schema registry, keyed by collection name, for
// tooling.
func (h *SchemaHandler) Get(c *fiber.Ctx) error {
	out := make(map[string]schema.Entity)
	for _, entity := range schema.Registry() {
		out[entity.Collection] = entity
	}
	return c.JSON(out)
}
