package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lamchun/academy-backend/internal/dto"
	"github.com/lamchun/academy-backend/internal/models"
	"github.com/lamchun/academy-backend/internal/store"
	"github.com/lamchun/academy-backend/internal/validation"
)

type ProgressService struct {
	store store.Store
	now   func() time.Time
}

func NewProgressService(st store.Store) *ProgressService {
	return &ProgressService{
		store: st,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Upsert writes the watch progress for one (user_id, video_id) pair.
//
// An existing record is overwritten in full with the newly validated values
// and its updated_at advances; created_at and the identifier do not change.
// Otherwise a new record is inserted with created_at == updated_at. Either
// way the identifier of the affected record is returned; the response does
// not distinguish the two outcomes.
//
// The lookup and the write are two separate store calls with no atomicity
// or mutual exclusion: two near-simultaneous upserts for the same pair can
// both observe "not found" and both insert.
func (s *ProgressService) Upsert(ctx context.Context, req *dto.UpsertProgressRequest) (string, error) {
	req.ApplyDefaults()

	progress := models.Progress{
		UserID:          req.UserID,
		VideoID:         req.VideoID,
		Percent:         req.Percent,
		LastPositionSec: req.LastPositionSec,
	}
	if err := validation.Struct(&progress); err != nil {
		return "", err
	}

	existing, err := s.store.FindOne(ctx, models.CollectionProgress, bson.M{
		"user_id":  progress.UserID,
		"video_id": progress.VideoID,
	})
	if err != nil {
		return "", err
	}

	now := s.now()
	if existing != nil {
		id, err := documentID(existing)
		if err != nil {
			return "", err
		}
		fields := bson.M{
			"user_id":           progress.UserID,
			"video_id":          progress.VideoID,
			"percent":           progress.Percent,
			"last_position_sec": progress.LastPositionSec,
			"updated_at":        now,
		}
		if err := s.store.UpdateByID(ctx, models.CollectionProgress, id, fields); err != nil {
			return "", err
		}
		return id, nil
	}

	progress.CreatedAt = now
	progress.UpdatedAt = now
	return s.store.Insert(ctx, models.CollectionProgress, &progress)
}

// ListForUser returns up to limit progress records for one user.
func (s *ProgressService) ListForUser(ctx context.Context, userID string, limit int64) ([]bson.M, error) {
	return s.store.Find(ctx, models.CollectionProgress, bson.M{"user_id": userID}, limit)
}

func documentID(doc bson.M) (string, error) {
	switch id := doc["_id"].(type) {
	case primitive.ObjectID:
		return id.Hex(), nil
	case string:
		return id, nil
	default:
		return "", fmt.Errorf("unexpected document id type %T", doc["_id"])
	}
}
