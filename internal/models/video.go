package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

const CollectionVideo = "video"

type Video struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title" validate:"required"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	URL          string             `bson:"url" json:"url" validate:"required"`
	DurationSec  *int               `bson:"duration_sec,omitempty" json:"duration_sec,omitempty" validate:"omitempty,gte=0"`
	Level        string             `bson:"level" json:"level" validate:"oneof=beginner intermediate advanced"`
	Topics       []string           `bson:"topics" json:"topics"`
	RequiresPlan string             `bson:"requires_plan" json:"requires_plan" validate:"oneof=BASIC PREMIUM VIP"`
}
