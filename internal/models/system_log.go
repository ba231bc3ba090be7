package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const CollectionSystemLog = "systemlog"

// SystemLog is an internal error-log record written by logging.StoreHandler.
// It is not part of the public entity set.
type SystemLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
	Level     string             `bson:"level" json:"level"`
	Message   string             `bson:"message" json:"message"`
	RequestID string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Error     string             `bson:"error,omitempty" json:"error,omitempty"`
	Extra     bson.M             `bson:"extra,omitempty" json:"extra,omitempty"`
}
