package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ExecuteStore is the persistence surface of the privileged ad-hoc query
// endpoint. Filters and updates are raw documents; no resource schema is
// applied.
type ExecuteStore interface {
	Find(ctx context.Context, collection string, query bson.M) ([]bson.M, error)
	UpdateMany(ctx context.Context, collection string, query, update bson.M) (int64, error)
	DeleteMany(ctx context.Context, collection string, query bson.M) (int64, error)
}

// NormalizeID rewrites an identifier-shaped _id filter value from its wire
// form (hex string) into the store's native ObjectID.
func NormalizeID(query bson.M) error {
	raw, ok := query["_id"]
	if !ok {
		return nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil
	}
	oid, err := bson.ObjectIDFromHex(s)
	if err != nil {
		return ErrInvalidID
	}
	query["_id"] = oid
	return nil
}

// Find returns all documents matching the filter, verbatim.
func (s *MongoStore) Find(ctx context.Context, collection string, query bson.M) ([]bson.M, error) {
	cursor, err := s.db.Collection(collection).Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	results := []bson.M{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode %s: %w", collection, err)
	}
	return results, nil
}

// UpdateMany applies a partial field-set merge to every match and returns
// the number of modified documents.
func (s *MongoStore) UpdateMany(ctx context.Context, collection string, query, update bson.M) (int64, error) {
	res, err := s.db.Collection(collection).UpdateMany(ctx, query, bson.M{"$set": update})
	if err != nil {
		return 0, fmt.Errorf("update in %s: %w", collection, err)
	}
	return res.ModifiedCount, nil
}

// DeleteMany removes every match and returns the number of deleted documents.
func (s *MongoStore) DeleteMany(ctx context.Context, collection string, query bson.M) (int64, error) {
	res, err := s.db.Collection(collection).DeleteMany(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("delete in %s: %w", collection, err)
	}
	return res.DeletedCount, nil
}
