package storage_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/saasbase/pkg/logger"
	"github.com/dmitrymomot/saasbase/svc/storage"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Get(ctx context.Context, key storage.Key) ([]storage.Item, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Item), args.Error(1)
}

func (m *mockRepository) Save(ctx context.Context, key storage.Key, items []storage.Item) ([]storage.Item, error) {
	args := m.Called(ctx, key, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Item), args.Error(1)
}

func (m *mockRepository) Delete(ctx context.Context, key storage.Key) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func TestService_Placeholder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := storage.NewService()

	items, err := svc.Get(ctx, "bookmarks_u1")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	items, err = svc.Save(ctx, "bookmarks_u1", []storage.Item{{"url": "https://example.com"}})
	require.NoError(t, err)
	assert.Empty(t, items)

	ok, err := svc.Delete(ctx, "bookmarks_u1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestService_InvalidKey(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	svc := storage.NewService(storage.WithLogger(logger.New(logger.WithOutput(buf))))
	ctx := context.Background()

	_, err := svc.Get(ctx, "nokey")
	assert.ErrorIs(t, err, storage.ErrInvalidKey)
	assert.ErrorIs(t, err, storage.ErrOperationFailed)

	_, err = svc.Save(ctx, "nokey", nil)
	assert.ErrorIs(t, err, storage.ErrInvalidKey)

	ok, err := svc.Delete(ctx, "nokey")
	assert.ErrorIs(t, err, storage.ErrInvalidKey)
	assert.False(t, ok)

	out := buf.String()
	assert.Contains(t, out, `"operation":"getStorageItem"`)
	assert.Contains(t, out, `"operation":"saveStorageItem"`)
	assert.Contains(t, out, `"operation":"deleteStorageItem"`)
	assert.Contains(t, out, `"component":"Storage"`)
}

func TestService_Repository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	key := storage.Key{Type: "bookmarks", UserID: "u1"}
	items := []storage.Item{{"url": "https://example.com"}}

	repo := new(mockRepository)
	repo.On("Save", mock.Anything, key, items).Return(items, nil).Once()
	repo.On("Get", mock.Anything, key).Return(items, nil).Once()
	repo.On("Delete", mock.Anything, key).Return(true, nil).Once()

	svc := storage.NewService(storage.WithRepository(repo))

	saved, err := svc.Save(ctx, "bookmarks_u1", items)
	require.NoError(t, err)
	assert.Equal(t, items, saved)

	got, err := svc.Get(ctx, "bookmarks_u1")
	require.NoError(t, err)
	assert.Equal(t, items, got)

	ok, err := svc.Delete(ctx, "bookmarks_u1")
	require.NoError(t, err)
	assert.True(t, ok)

	repo.AssertExpectations(t)
}

func TestService_RepositoryError(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("connection reset")
	repo := new(mockRepository)
	repo.On("Get", mock.Anything, storage.Key{Type: "notes", UserID: "u2"}).Return(nil, dbErr).Once()

	buf := &bytes.Buffer{}
	svc := storage.NewService(
		storage.WithRepository(repo),
		storage.WithLogger(logger.New(logger.WithOutput(buf))),
	)

	items, err := svc.Get(context.Background(), "notes_u2")
	assert.Nil(t, items)
	assert.ErrorIs(t, err, dbErr)
	assert.ErrorIs(t, err, storage.ErrOperationFailed)
	assert.Contains(t, buf.String(), `"user_id":"u2"`)

	repo.AssertExpectations(t)
}

func TestService_NilRepositoryKeepsDefault(t *testing.T) {
	t.Parallel()

	svc := storage.NewService(storage.WithRepository(nil))
	ok, err := svc.Delete(context.Background(), "a_b")
	require.NoError(t, err)
	assert.True(t, ok)
}
