package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/lamchun/academy-backend/internal/models"
	"github.com/lamchun/academy-backend/internal/store"
)

// StartCleanup runs a daily goroutine that deletes systemlog documents older
// than 30 days. Only internal log records are ever deleted; entity
// collections have no destruction path.
func StartCleanup(st store.Store, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cutoff := time.Now().UTC().AddDate(0, 0, -30)
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				deleted, err := st.DeleteBefore(ctx, models.CollectionSystemLog, "timestamp", cutoff)
				cancel()
				if err != nil {
					slog.Error("log cleanup failed", "error", err)
				} else if deleted > 0 {
					slog.Info("log cleanup completed", "deleted", deleted)
				}
			case <-done:
				return
			}
		}
	}()
}
