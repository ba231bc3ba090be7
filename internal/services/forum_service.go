package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/lamchun/academy-backend/internal/dto"
	"github.com/lamchun/academy-backend/internal/models"
	"github.com/lamchun/academy-backend/internal/store"
	"github.com/lamchun/academy-backend/internal/validation"
)

type ForumService struct {
	store store.Store
}

func NewForumService(st store.Store) *ForumService {
	return &ForumService{store: st}
}

func (s *ForumService) CreatePost(ctx context.Context, req *dto.CreateForumPostRequest) (string, error) {
	req.ApplyDefaults()

	post := models.ForumPost{
		UserID:  req.UserID,
		Title:   req.Title,
		Content: req.Content,
		Topics:  req.Topics,
	}
	if err := validation.Struct(&post); err != nil {
		return "", err
	}

	return s.store.Insert(ctx, models.CollectionForumPost, &post)
}

func (s *ForumService) ListPosts(ctx context.Context, limit int64) ([]bson.M, error) {
	return s.store.Find(ctx, models.CollectionForumPost, bson.M{}, limit)
}
