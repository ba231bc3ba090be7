package logging

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/lamchun/academy-backend/internal/models"
	"github.com/lamchun/academy-backend/internal/store/memstore"
)

func TestStoreHandler_OnlyErrorAndAbove(t *testing.T) {
	h := NewStoreHandler(memstore.New())
	defer h.Stop()

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("INFO should not be handled")
	}
	if h.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("WARN should not be handled")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("ERROR should be handled")
	}
}

func TestStoreHandler_FlushWritesBatch(t *testing.T) {
	st := memstore.New()
	h := NewStoreHandler(st)
	defer h.Stop()

	rec := slog.NewRecord(time.Now().UTC(), slog.LevelError, "store write failed", 0)
	rec.AddAttrs(slog.String("error", "boom"), slog.String("collection", "video"))
	if err := h.Handle(context.Background(), rec); err != nil {
		t.Fatalf("handle failed: %v", err)
	}

	h.flush()

	if got := st.Count(models.CollectionSystemLog); got != 1 {
		t.Fatalf("expected 1 log document, got %d", got)
	}
	doc, err := st.FindOne(context.Background(), models.CollectionSystemLog, nil)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if doc["message"] != "store write failed" {
		t.Errorf("message = %v", doc["message"])
	}
	if doc["error"] != "boom" {
		t.Errorf("error = %v", doc["error"])
	}
	if doc["level"] != "ERROR" {
		t.Errorf("level = %v", doc["level"])
	}
}
