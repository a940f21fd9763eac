package session

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// CollectionName is the collection MongoStore keeps sessions in.
const CollectionName = "sessions"

// MongoStore implements Store on a MongoDB collection keyed by token.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore returns a store on db's sessions collection.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection(CollectionName)}
}

// EnsureIndexes creates the TTL index on expires_at and the user lookup index.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
		{
			Keys: bson.D{{Key: "user.id", Value: 1}},
		},
	})
	if err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	return nil
}

func (s *MongoStore) Create(ctx context.Context, session *Session) error {
	if session == nil || session.Token == "" {
		return ErrInvalidSession
	}
	if _, err := s.coll.InsertOne(ctx, session); err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	return nil
}

func (s *MongoStore) Get(ctx context.Context, token string) (*Session, error) {
	var session Session
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: token}}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.Join(ErrStoreFailure, err)
	}

	// The TTL monitor runs about once a minute, so expiry is checked here too.
	if session.IsExpired() {
		_ = s.Delete(ctx, token)
		return nil, ErrSessionExpired
	}
	return &session, nil
}

func (s *MongoStore) Update(ctx context.Context, session *Session) error {
	if session == nil || session.Token == "" {
		return ErrInvalidSession
	}
	res, err := s.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: session.Token}}, session)
	if err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	if res.MatchedCount == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (s *MongoStore) UpdateActivity(ctx context.Context, token string, lastActivity time.Time) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: token}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "last_activity_at", Value: lastActivity}}}},
	)
	if err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	if res.MatchedCount == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, token string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: token}}); err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	return nil
}

func (s *MongoStore) DeleteExpired(ctx context.Context) error {
	filter := bson.D{{Key: "expires_at", Value: bson.D{{Key: "$lt", Value: time.Now()}}}}
	if _, err := s.coll.DeleteMany(ctx, filter); err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	return nil
}

func (s *MongoStore) DeleteByUserID(ctx context.Context, userID string) error {
	if _, err := s.coll.DeleteMany(ctx, bson.D{{Key: "user.id", Value: userID}}); err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	return nil
}
