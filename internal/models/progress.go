package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const CollectionProgress = "progress"

// Progress tracks how far a user got through a video. At most one live
// record should exist per (user_id, video_id) pair; that is enforced by the
// upsert in ProgressService, not by a store-level uniqueness constraint.
//
// CreatedAt is set once on first insert; UpdatedAt advances on every write.
type Progress struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          string             `bson:"user_id" json:"user_id" validate:"required"`
	VideoID         string             `bson:"video_id" json:"video_id" validate:"required"`
	Percent         float64            `bson:"percent" json:"percent" validate:"gte=0,lte=100"`
	LastPositionSec int                `bson:"last_position_sec" json:"last_position_sec" validate:"gte=0"`
	CreatedAt       time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt       time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
