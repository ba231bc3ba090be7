// Package store is the document store gateway: generic create/read/update
// operations against named collections, abstracting over store availability.
package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrUnavailable is returned by every operation when the store connection
// was never established (missing configuration at process start). It is
// reported, not retried.
var ErrUnavailable = errors.New("document store not configured")

// Store is the process-wide document store handle. It is constructed once at
// startup and passed explicitly into every service that needs it, which also
// allows an in-memory double in tests.
//
// Filters are exact-match field maps. Find applies no sort: result order is
// store-native and must not be assumed stable by callers.
type Store interface {
	// Insert adds doc to the named collection, identifier excluded, and
	// returns the newly assigned identifier as an opaque hex string.
	Insert(ctx context.Context, collection string, doc any) (string, error)

	// InsertMany adds a batch of documents. Used by internal logging, not
	// by any exposed entity operation.
	InsertMany(ctx context.Context, collection string, docs []any) error

	// Find returns up to limit documents matching filter. An empty result
	// is a successful response, never an error.
	Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)

	// FindOne returns the first matching document, or nil when none match.
	FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error)

	// UpdateByID overwrites the given fields of one document ($set
	// semantics). The document's identifier does not change.
	UpdateByID(ctx context.Context, collection, id string, fields bson.M) error

	// DeleteBefore removes documents whose time field is older than cutoff.
	// Internal retention housekeeping only; no exposed operation deletes.
	DeleteBefore(ctx context.Context, collection, field string, cutoff time.Time) (int64, error)

	// Collections lists collection names, for diagnostics.
	Collections(ctx context.Context) ([]string, error)

	Ping(ctx context.Context) error
}
