package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/akramov/telepos/internal/core/port"
)

type snapshotDocument struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

// Store keeps catalog snapshots as (key, value) documents, one per
// key, upserted in place.
type Store struct {
	collection *mongo.Collection
}

func NewStore(db *mongo.Database, collectionName string) port.StorePort {
	return &Store{collection: db.Collection(collectionName)}
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var doc snapshotDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", false, nil
		}
		return "", false, err
	}
	return doc.Value, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value string) error {
	_, err := s.collection.UpdateOne(
		ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"value": value}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"_id": key})
	return err
}
