package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/lamchun/academy-backend/internal/dto"
	"github.com/lamchun/academy-backend/internal/models"
	"github.com/lamchun/academy-backend/internal/store"
	"github.com/lamchun/academy-backend/internal/validation"
)

type VideoService struct {
	store store.Store
}

func NewVideoService(st store.Store) *VideoService {
	return &VideoService{store: st}
}

// Create validates and defaults the request, then inserts the record. No
// partial write happens on a validation failure.
func (s *VideoService) Create(ctx context.Context, req *dto.CreateVideoRequest) (string, error) {
	req.ApplyDefaults()

	video := models.Video{
		Title:        req.Title,
		Description:  req.Description,
		URL:          req.URL,
		DurationSec:  req.DurationSec,
		Level:        req.Level,
		Topics:       req.Topics,
		RequiresPlan: req.RequiresPlan,
	}
	if err := validation.Struct(&video); err != nil {
		return "", err
	}

	return s.store.Insert(ctx, models.CollectionVideo, &video)
}

// List returns up to limit videos in store-native order.
func (s *VideoService) List(ctx context.Context, limit int64) ([]bson.M, error) {
	return s.store.Find(ctx, models.CollectionVideo, bson.M{}, limit)
}
