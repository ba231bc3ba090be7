package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Subscription tiers shared by User.Plan, Subscription.Plan,
// Video.RequiresPlan and LiveClass.AccessPlan.
const (
	PlanBasic   = "BASIC"
	PlanPremium = "PREMIUM"
	PlanVIP     = "VIP"
)

const CollectionUser = "user"

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	AvatarURL string             `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	Plan      string             `bson:"plan" json:"plan" validate:"oneof=BASIC PREMIUM VIP"`
	Country   string             `bson:"country,omitempty" json:"country,omitempty"`
	IsActive  bool               `bson:"is_active" json:"is_active"`
}
