package store

import "go.mongodb.org/mongo-driver/bson"

// DocumentAs decodes a raw document into a typed record. This is the typed
// view of the otherwise schemaless gateway: entities share one generic
// insert/read path while callers keep concrete types.
func DocumentAs[T any](doc bson.M) (T, error) {
	var out T
	if doc == nil {
		return out, nil
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return out, err
	}
	if err := bson.Unmarshal(raw, &out); err != nil {
		return out, err
	}
	return out, nil
}

// DocumentsAs decodes a slice of raw documents into typed records.
func DocumentsAs[T any](docs []bson.M) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		rec, err := DocumentAs[T](doc)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
