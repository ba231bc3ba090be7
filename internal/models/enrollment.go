package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const CollectionEnrollment = "enrollment"

// Enrollment links a user to a live class. No exposed HTTP operations yet.
type Enrollment struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID  string             `bson:"user_id" json:"user_id" validate:"required"`
	ClassID string             `bson:"class_id" json:"class_id" validate:"required"`
	Status  string             `bson:"status" json:"status" validate:"oneof=going interested canceled"`
}
