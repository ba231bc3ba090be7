package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Unavailable is the Store used when DATABASE_URL or DATABASE_NAME was
// missing at process start. Every operation fails with ErrUnavailable for
// the process lifetime; nothing no-ops or returns fabricated data.
type Unavailable struct{}

func NewUnavailable() Unavailable { return Unavailable{} }

func (Unavailable) Insert(context.Context, string, any) (string, error) {
	return "", ErrUnavailable
}

func (Unavailable) InsertMany(context.Context, string, []any) error {
	return ErrUnavailable
}

func (Unavailable) Find(context.Context, string, bson.M, int64) ([]bson.M, error) {
	return nil, ErrUnavailable
}

func (Unavailable) FindOne(context.Context, string, bson.M) (bson.M, error) {
	return nil, ErrUnavailable
}

func (Unavailable) UpdateByID(context.Context, string, string, bson.M) error {
	return ErrUnavailable
}

func (Unavailable) DeleteBefore(context.Context, string, string, time.Time) (int64, error) {
	return 0, ErrUnavailable
}

func (Unavailable) Collections(context.Context) ([]string, error) {
	return nil, ErrUnavailable
}

func (Unavailable) Ping(context.Context) error {
	return ErrUnavailable
}
