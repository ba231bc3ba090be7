package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const CollectionSubscription = "subscription"

// Subscription is an audit record of a purchased plan. Status is a validated
// value, not a governed state machine: nothing prevents moving an expired
// subscription back to active.
type Subscription struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id" validate:"required"`
	Plan      string             `bson:"plan" json:"plan" validate:"required,oneof=BASIC PREMIUM VIP"`
	StartedAt *time.Time         `bson:"started_at,omitempty" json:"started_at,omitempty"`
	ExpiresAt *time.Time         `bson:"expires_at,omitempty" json:"expires_at,omitempty"`
	Status    string             `bson:"status" json:"status" validate:"oneof=active canceled expired pending"`
}
