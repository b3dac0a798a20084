package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a record with the requested ID
// doesn't exist in the collection
var ErrNotFound = mongo.ErrNoDocuments

// Store wraps a single MongoDB collection with typed CRUD operations.
// All three catalogs use the same access patterns so one generic
// implementation replaces three copies
type Store[T any] struct {
	col *mongo.Collection
}

func NewStore[T any](database *mongo.Database, name string) *Store[T] {
	return &Store[T]{col: database.Collection(name)}
}

func (s *Store[T]) FindAll(ctx context.Context) ([]T, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query collection %s, %w", s.col.Name(), err)
	}

	items := []T{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode documents from %s, %w", s.col.Name(), err)
	}

	return items, nil
}

func (s *Store[T]) FindByID(ctx context.Context, id string) (*T, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var item T
	if err := s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&item); err != nil {
		return nil, err
	}

	return &item, nil
}

// Insert stores a new document and returns the generated ID
func (s *Store[T]) Insert(ctx context.Context, item *T) (string, error) {
	res, err := s.col.InsertOne(ctx, item)
	if err != nil {
		return "", fmt.Errorf("failed to insert into %s, %w", s.col.Name(), err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted ID type %T", res.InsertedID)
	}

	return oid.Hex(), nil
}

// Replace overwrites the whole document. Last writer wins, there is
// no conflict detection
func (s *Store[T]) Replace(ctx context.Context, id string, item *T) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.col.ReplaceOne(ctx, bson.M{"_id": oid}, item)
	if err != nil {
		return fmt.Errorf("failed to replace document in %s, %w", s.col.Name(), err)
	}

	if res.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// SetField persists a single field of one document, leaving every
// other field untouched
func (s *Store[T]) SetField(ctx context.Context, id, field string, value any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		return fmt.Errorf("failed to update document in %s, %w", s.col.Name(), err)
	}

	if res.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Store[T]) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete document from %s, %w", s.col.Name(), err)
	}

	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
