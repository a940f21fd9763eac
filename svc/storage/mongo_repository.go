package storage

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// CollectionName is the collection MongoRepository writes to.
const CollectionName = "storage"

type document struct {
	Key       string    `bson:"_id"`
	Type      string    `bson:"type"`
	UserID    string    `bson:"user_id"`
	Items     []Item    `bson:"items"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoRepository keeps one document per key in the storage collection.
type MongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository returns a repository on db's storage collection.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(CollectionName)}
}

// EnsureIndexes creates the index used to list a user's keys.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "type", Value: 1}},
	})
	return err
}

func (r *MongoRepository) Get(ctx context.Context, key Key) ([]Item, error) {
	var doc document
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: key.String()}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return []Item{}, nil
	}
	if err != nil {
		return nil, err
	}
	if doc.Items == nil {
		return []Item{}, nil
	}
	return doc.Items, nil
}

func (r *MongoRepository) Save(ctx context.Context, key Key, items []Item) ([]Item, error) {
	if items == nil {
		items = []Item{}
	}
	doc := document{
		Key:       key.String(),
		Type:      key.Type,
		UserID:    key.UserID,
		Items:     items,
		UpdatedAt: time.Now().UTC(),
	}
	_, err := r.coll.ReplaceOne(ctx,
		bson.D{{Key: "_id", Value: doc.Key}},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes the document; a missing document still counts as deleted.
func (r *MongoRepository) Delete(ctx context.Context, key Key) (bool, error) {
	if _, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: key.String()}}); err != nil {
		return false, err
	}
	return true, nil
}
