package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 5 * time.Second

// MongoStore implements Store backed by a MongoDB collection. Each call
// runs under its own timeout; on timeout or connection failure the error
// wraps ErrUnavailable.
type MongoStore[T any] struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewMongoStore creates a store over the given collection.
func NewMongoStore[T any](collection *mongo.Collection) *MongoStore[T] {
	return &MongoStore[T]{
		collection: collection,
		timeout:    defaultTimeout,
	}
}

func (s *MongoStore[T]) Get(ctx context.Context, key Key) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var record T
	err := s.collection.FindOne(ctx, keyFilter(key)).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &record, nil
}

func (s *MongoStore[T]) ScanAll(ctx context.Context) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*s.timeout)
	defer cancel()

	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer cursor.Close(ctx)

	var records []T
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return records, nil
}

func (s *MongoStore[T]) Put(ctx context.Context, key Key, record T) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, keyFilter(key), record, opts); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *MongoStore[T]) UpdatePartial(ctx context.Context, key Key, expr UpdateExpression) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	sets := bson.D{}
	for _, set := range expr.Sets {
		sets = append(sets, bson.E{Key: set.Name, Value: set.Value})
	}

	// Upsert so a blind update against a missing key creates a partial
	// record, matching the loose behavior of the original store.
	opts := options.Update().SetUpsert(true)
	update := bson.D{{Key: "$set", Value: sets}}
	if _, err := s.collection.UpdateOne(ctx, keyFilter(key), update, opts); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *MongoStore[T]) Delete(ctx context.Context, key Key) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// DeleteOne reports zero deletions for a missing key; that is a
	// successful no-op, not an error.
	if _, err := s.collection.DeleteOne(ctx, keyFilter(key)); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func keyFilter(key Key) bson.D {
	filter := bson.D{}
	for _, field := range key {
		filter = append(filter, bson.E{Key: field.Name, Value: field.Value})
	}
	return filter
}
