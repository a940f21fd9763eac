package storage_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/saasbase/pkg/mongo"
	"github.com/dmitrymomot/saasbase/pkg/redis"
	"github.com/dmitrymomot/saasbase/svc/storage"
)

// TestMongoRepository runs against the server in MONGODB_TEST_URI.
func TestMongoRepository(t *testing.T) {
	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("MONGODB_TEST_URI is not set")
	}

	ctx := context.Background()
	db, err := mongo.NewWithDatabase(ctx, mongo.Config{
		URI:            uri,
		Database:       "storage_test_" + uuid.NewString()[:8],
		ConnectTimeout: 5 * time.Second,
		RetryAttempts:  1,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		mongo.Disconnect(context.Background(), db.Client(), nil)
	})

	repo := storage.NewMongoRepository(db)
	require.NoError(t, repo.EnsureIndexes(ctx))
	svc := storage.NewService(storage.WithRepository(repo))

	items, err := svc.Get(ctx, "bookmarks_u1")
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = svc.Save(ctx, "bookmarks_u1", []storage.Item{{"url": "https://example.com"}})
	require.NoError(t, err)

	items, err = svc.Get(ctx, "bookmarks_u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "https://example.com", items[0]["url"])

	ok, err := svc.Delete(ctx, "bookmarks_u1")
	require.NoError(t, err)
	assert.True(t, ok)

	items, err = svc.Get(ctx, "bookmarks_u1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

// TestCachedRepository runs against the server in REDIS_TEST_URL.
func TestCachedRepository(t *testing.T) {
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL is not set")
	}

	ctx := context.Background()
	client, err := redis.Connect(ctx, redis.Config{ConnectionURL: url, RetryAttempts: 1, ConnectTimeout: 5 * time.Second}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	key := storage.Key{Type: "bookmarks", UserID: uuid.NewString()}
	items := []storage.Item{{"url": "https://example.com"}}

	next := new(mockRepository)
	next.On("Save", mock.Anything, key, items).Return(items, nil).Once()
	next.On("Delete", mock.Anything, key).Return(true, nil).Once()
	next.On("Get", mock.Anything, key).Return([]storage.Item{}, nil).Once()

	cached := storage.NewCachedRepository(next, client, storage.WithCachePrefix("test:"), storage.WithCacheTTL(time.Minute))

	_, err = cached.Save(ctx, key, items)
	require.NoError(t, err)

	// Served from the cache: next.Get is not called.
	got, err := cached.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, items, got)

	ok, err := cached.Delete(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = cached.Get(ctx, key)
	require.NoError(t, err)
	assert.Empty(t, got)

	next.AssertExpectations(t)
}
