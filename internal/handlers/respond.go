package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lamchun/academy-backend/internal/dto"
	"github.com/lamchun/academy-backend/internal/store"
	"github.com/lamchun/academy-backend/internal/validation"
)

// serializeDoc replaces the store's internal identifier field with a public
// "id" string; the internal field name never leaks to responses.
func serializeDoc(doc bson.M) bson.M {
	if doc == nil {
		return doc
	}
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	if raw, ok := out["_id"]; ok {
		delete(out, "_id")
		switch id := raw.(type) {
		case primitive.ObjectID:
			out["id"] = id.Hex()
		default:
			out["id"] = id
		}
	}
	return out
}

func serializeDocs(docs []bson.M) []bson.M {
	out := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		out = append(out, serializeDoc(doc))
	}
	return out
}

// writeError maps the failure taxonomy to HTTP: validation errors are
// caller-correctable (400, per-field detail); an unconfigured store is a
// server-side failure (500), distinguishable from validation.
func writeError(c *fiber.Ctx, err error) error {
	var verr *validation.Errors
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Error: true, Message: "Validation failed", Fields: verr.Fields,
		})
	}
	if errors.Is(err, store.ErrUnavailable) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Database not configured",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}

// queryLimit reads ?limit=N, falling back to the route default when the
// value is missing, unparsable, or not positive.
func queryLimit(c *fiber.Ctx, fallback int64) int64 {
	limit, err := strconv.ParseInt(c.Query("limit", ""), 10, 64)
	if err != nil || limit <= 0 {
		return fallback
	}
	return limit
}
