package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lamchun/academy-backend/internal/config"
	"github.com/lamchun/academy-backend/internal/dto"
	"github.com/lamchun/academy-backend/internal/store"
)

type HealthHandler struct {
	cfg   *config.Config
	store store.Store
}

func NewHealthHandler(cfg *config.Config, st store.Store) *HealthHandler {
	return &HealthHandler{cfg: cfg, store: st}
}

// Check reports server and store health. The store can be permanently
// unavailable (missing configuration) while the server itself stays up.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	resp := dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        "ok",
	}

	if !h.cfg.StoreConfigured() {
		resp.DB = "not configured"
		return c.JSON(resp)
	}

	ctx := c.UserContext()
	if err := h.store.Ping(ctx); err != nil {
		resp.DB = "unhealthy: " + err.Error()
		return c.JSON(resp)
	}

	resp.Database = h.cfg.DatabaseName
	if names, err := h.store.Collections(ctx); err == nil {
		if len(names) > 20 {
			names = names[:20]
		}
		resp.Collections = names
	}
	return c.JSON(resp)
}
