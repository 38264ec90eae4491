package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"hr-management-api/internal/resource"
)

// joinedField is the transient field name used by lookup pipelines.
const joinedField = "joined"

// ResourceStore is the single persistence surface of the pipeline: one
// logical read or write per call.
type ResourceStore interface {
	List(ctx context.Context, def resource.Definition) ([]bson.M, error)
	Get(ctx context.Context, def resource.Definition, id string) (bson.M, error)
	Insert(ctx context.Context, def resource.Definition, doc bson.M) (bson.M, error)
	Replace(ctx context.Context, def resource.Definition, id string, fields bson.M) (bson.M, error)
	Delete(ctx context.Context, def resource.Definition, id string) error
	ResolveReference(ctx context.Context, ref resource.Reference, id bson.ObjectID) (bson.M, error)
}

// MongoStore implements ResourceStore against MongoDB.
type MongoStore struct {
	db *MongoDB
}

// NewMongoStore creates a resource store backed by the given database.
func NewMongoStore(db *MongoDB) *MongoStore {
	return &MongoStore{db: db}
}

// List returns all documents of a resource, newest first. Resources that
// join on list run an aggregation; a dangling reference drops the record
// from the result rather than surfacing a partial row.
func (s *MongoStore) List(ctx context.Context, def resource.Definition) ([]bson.M, error) {
	coll := s.db.Collection(def.Name)

	var cursor *mongo.Cursor
	var err error
	if def.JoinOnList && def.Reference != nil {
		pipeline := append(lookupStages(*def.Reference),
			bson.M{"$sort": bson.M{"created_at": -1}},
		)
		cursor, err = coll.Aggregate(ctx, pipeline)
	} else {
		opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
		if projection := omitProjection(def); projection != nil {
			opts = opts.SetProjection(projection)
		}
		cursor, err = coll.Find(ctx, bson.M{}, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", def.Name, err)
	}

	results := []bson.M{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode %s: %w", def.Name, err)
	}
	return results, nil
}

// Get fetches a single document by identifier.
func (s *MongoStore) Get(ctx context.Context, def resource.Definition, id string) (bson.M, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	coll := s.db.Collection(def.Name)

	if def.JoinOnGet && def.Reference != nil {
		pipeline := append([]bson.M{{"$match": bson.M{"_id": oid}}}, lookupStages(*def.Reference)...)
		cursor, err := coll.Aggregate(ctx, pipeline)
		if err != nil {
			return nil, fmt.Errorf("get %s: %w", def.Name, err)
		}
		var results []bson.M
		if err := cursor.All(ctx, &results); err != nil {
			return nil, fmt.Errorf("decode %s: %w", def.Name, err)
		}
		if len(results) == 0 {
			return nil, ErrNotFound
		}
		return results[0], nil
	}

	opts := options.FindOne()
	if projection := omitProjection(def); projection != nil {
		opts = opts.SetProjection(projection)
	}

	var doc bson.M
	err = coll.FindOne(ctx, bson.M{"_id": oid}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", def.Name, err)
	}
	return doc, nil
}

// Insert assigns the creation timestamp, writes the document and returns it
// with the generated identifier attached.
func (s *MongoStore) Insert(ctx context.Context, def resource.Definition, doc bson.M) (bson.M, error) {
	doc["created_at"] = time.Now().UTC()

	res, err := s.db.Collection(def.Name).InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", def.Name, err)
	}
	doc["_id"] = res.InsertedID
	return doc, nil
}

// Replace applies a $set of the mutable fields to an existing document and
// returns the updated document. The identifier and created_at are never in
// the field set, so both are preserved.
func (s *MongoStore) Replace(ctx context.Context, def resource.Definition, id string, fields bson.M) (bson.M, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated bson.M
	err = s.db.Collection(def.Name).
		FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": fields}, opts).
		Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", def.Name, err)
	}
	return updated, nil
}

// Delete removes a document by identifier. Hard delete, no tombstones.
func (s *MongoStore) Delete(ctx context.Context, def resource.Definition, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := s.db.Collection(def.Name).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete %s: %w", def.Name, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ResolveReference fetches the referenced document so callers can both
// verify the reference and read its display field.
func (s *MongoStore) ResolveReference(ctx context.Context, ref resource.Reference, id bson.ObjectID) (bson.M, error) {
	var doc bson.M
	err := s.db.Collection(ref.Collection).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrReferenceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolve %s reference: %w", ref.Collection, err)
	}
	return doc, nil
}

// lookupStages builds the aggregation stages that join the referenced
// display field into each document. $unwind keeps inner-join semantics:
// records whose reference no longer resolves are omitted.
func lookupStages(ref resource.Reference) []bson.M {
	return []bson.M{
		{"$lookup": bson.M{
			"from":         ref.Collection,
			"localField":   ref.Field,
			"foreignField": "_id",
			"as":           joinedField,
		}},
		{"$unwind": "$" + joinedField},
		{"$addFields": bson.M{ref.As: "$" + joinedField + "." + ref.DisplayField}},
		{"$project": bson.M{joinedField: 0}},
	}
}

func omitProjection(def resource.Definition) bson.M {
	if len(def.Omit) == 0 {
		return nil
	}
	projection := bson.M{}
	for _, field := range def.Omit {
		projection[field] = 0
	}
	return projection
}
