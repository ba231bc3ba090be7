package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const CollectionForumPost = "forumpost"

type ForumPost struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID  string             `bson:"user_id" json:"user_id" validate:"required"`
	Title   string             `bson:"title" json:"title" validate:"required"`
	Content string             `bson:"content" json:"content" validate:"required"`
	Topics  []string           `bson:"topics" json:"topics"`
}
