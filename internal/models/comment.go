package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const CollectionComment = "comment"

// Comment has no exposed HTTP operations yet; the schema is declared for
// validation and tooling.
type Comment struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID  string             `bson:"user_id" json:"user_id" validate:"required"`
	PostID  string             `bson:"post_id" json:"post_id" validate:"required"`
	Content string             `bson:"content" json:"content" validate:"required"`
}
