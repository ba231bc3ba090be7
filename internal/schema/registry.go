// Package schema is a static registry of the declared entity schemas. The
// registry is hand-maintained alongside internal/models and served by the
// schema endpoint for tooling; it replaces runtime reflection over the
// model types.
package schema

import "github.com/lamchun/academy-backend/internal/models"

// Field describes one recognized field of an entity schema.
type Field struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Default  any      `json:"default,omitempty"`
	Enum     []string `json:"enum,omitempty"`
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Format   string   `json:"format,omitempty"`
}

// Entity describes one document kind and the collection that persists it.
// Collection names are fixed lowercase singular nouns and are part of the
// persisted-state layout contract.
type Entity struct {
	Name       string  `json:"name"`
	Collection string  `json:"collection"`
	Fields     []Field `json:"fields"`
}

var plans = []string{models.PlanBasic, models.PlanPremium, models.PlanVIP}

var registry = []Entity{
	{
		Name:       "User",
		Collection: models.CollectionUser,
		Fields: []Field{
			{Name: "name", Type: "string", Required: true},
			{Name: "email", Type: "string", Required: true, Format: "email"},
			{Name: "avatar_url", Type: "string"},
			{Name: "plan", Type: "string", Default: models.PlanBasic, Enum: plans},
			{Name: "country", Type: "string"},
			{Name: "is_active", Type: "bool", Default: true},
		},
	},
	{
		Name:       "Subscription",
		Collection: models.CollectionSubscription,
		Fields: []Field{
			{Name: "user_id", Type: "string", Required: true},
			{Name: "plan", Type: "string", Required: true, Enum: plans},
			{Name: "started_at", Type: "datetime"},
			{Name: "expires_at", Type: "datetime"},
			{Name: "status", Type: "string", Default: "pending", Enum: []string{"active", "canceled", "expired", "pending"}},
		},
	},
	{
		Name:       "Video",
		Collection: models.CollectionVideo,
		Fields: []Field{
			{Name: "title", Type: "string", Required: true},
			{Name: "description", Type: "string"},
			{Name: "url", Type: "string", Required: true},
			{Name: "duration_sec", Type: "int", Min: f(0)},
			{Name: "level", Type: "string", Default: models.LevelBeginner, Enum: []string{models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced}},
			{Name: "topics", Type: "[]string", Default: []string{}},
			{Name: "requires_plan", Type: "string", Default: models.PlanBasic, Enum: plans},
		},
	},
	{
		Name:       "Progress",
		Collection: models.CollectionProgress,
		Fields: []Field{
			{Name: "user_id", Type: "string", Required: true},
			{Name: "video_id", Type: "string", Required: true},
			{Name: "percent", Type: "float", Default: 0, Min: f(0), Max: f(100)},
			{Name: "last_position_sec", Type: "int", Default: 0, Min: f(0)},
		},
	},
	{
		Name:       "ForumPost",
		Collection: models.CollectionForumPost,
		Fields: []Field{
			{Name: "user_id", Type: "string", Required: true},
			{Name: "title", Type: "string", Required: true},
			{Name: "content", Type: "string", Required: true},
			{Name: "topics", Type: "[]string", Default: []string{}},
		},
	},
	{
		Name:       "Comment",
		Collection: models.CollectionComment,
		Fields: []Field{
			{Name: "user_id", Type: "string", Required: true},
			{Name: "post_id", Type: "string", Required: true},
			{Name: "content", Type: "string", Required: true},
		},
	},
	{
		Name:       "LiveClass",
		Collection: models.CollectionLiveClass,
		Fields: []Field{
			{Name: "title", Type: "string", Required: true},
			{Name: "instructor", Type: "string", Required: true},
			{Name: "starts_at", Type: "datetime", Required: true},
			{Name: "ends_at", Type: "datetime"},
			{Name: "access_plan", Type: "string", Default: models.PlanBasic, Enum: plans},
			{Name: "meeting_url", Type: "string"},
		},
	},
	{
		Name:       "Enrollment",
		Collection: models.CollectionEnrollment,
		Fields: []Field{
			{Name: "user_id", Type: "string", Required: true},
			{Name: "class_id", Type: "string", Required: true},
			{Name: "status", Type: "string", Default: "going", Enum: []string{"going", "interested", "canceled"}},
		},
	},
}

// Registry returns every declared entity schema in declaration order.
func Registry() []Entity {
	return registry
}

// Lookup returns the schema for a collection name.
func Lookup(collection string) (Entity, bool) {
	for _, e := range registry {
		if e.Collection == collection {
			return e, true
		}
	}
	return Entity{}, false
}

// Collections returns every entity collection name.
func Collections() []string {
	names := make([]string, 0, len(registry))
	for _, e := range registry {
		names = append(names, e.Collection)
	}
	return names
}

func f(v float64) *float64 { return &v }
