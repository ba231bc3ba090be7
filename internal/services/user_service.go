package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/lamchun/academy-backend/internal/dto"
	"github.com/lamchun/academy-backend/internal/models"
	"github.com/lamchun/academy-backend/internal/store"
	"github.com/lamchun/academy-backend/internal/validation"
)

type UserService struct {
	store store.Store
}

func NewUserService(st store.Store) *UserService {
	return &UserService{store: st}
}

// Create validates the account fields (email format, plan tier) and inserts
// the record. Email uniqueness is informational, not enforced here.
func (s *UserService) Create(ctx context.Context, req *dto.CreateUserRequest) (string, error) {
	req.ApplyDefaults()

	user := models.User{
		Name:      req.Name,
		Email:     req.Email,
		AvatarURL: req.AvatarURL,
		Plan:      req.Plan,
		Country:   req.Country,
		IsActive:  *req.IsActive,
	}
	if err := validation.Struct(&user); err != nil {
		return "", err
	}

	return s.store.Insert(ctx, models.CollectionUser, &user)
}

func (s *UserService) List(ctx context.Context, limit int64) ([]bson.M, error) {
	return s.store.Find(ctx, models.CollectionUser, bson.M{}, limit)
}
