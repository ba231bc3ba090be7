package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const CollectionLiveClass = "liveclass"

// LiveClass has no exposed HTTP operations yet. EndsAt is never checked
// against StartsAt; constraints are per-field only.
type LiveClass struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title      string             `bson:"title" json:"title" validate:"required"`
	Instructor string             `bson:"instructor" json:"instructor" validate:"required"`
	StartsAt   time.Time          `bson:"starts_at" json:"starts_at" validate:"required"`
	EndsAt     *time.Time         `bson:"ends_at,omitempty" json:"ends_at,omitempty"`
	AccessPlan string             `bson:"access_plan" json:"access_plan" validate:"oneof=BASIC PREMIUM VIP"`
	MeetingURL string             `bson:"meeting_url,omitempty" json:"meeting_url,omitempty"`
}
