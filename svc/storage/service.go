package storage

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/saasbase/pkg/logger"
)

const component = "Storage"

// Service reads and writes per-user items addressed by "{type}_{userID}" keys.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithRepository sets the backing repository. The default is NopRepository.
func WithRepository(repo Repository) Option {
	return func(s *Service) {
		if repo != nil {
			s.repo = repo
		}
	}
}

// WithLogger sets the logger used to report failed operations.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// NewService creates a storage service.
func NewService(opts ...Option) *Service {
	s := &Service{repo: NopRepository{}}
	for _, opt := range opts {
		opt(s)
	}
	s.log = logger.OrNop(s.log).With(logger.Component(component))
	return s
}

// Get returns the items stored under key.
func (s *Service) Get(ctx context.Context, key string) ([]Item, error) {
	return withErrorHandling(ctx, s, "getStorageItem", key, func(k Key) ([]Item, error) {
		return s.repo.Get(ctx, k)
	})
}

// Save stores items under key and returns what was stored.
func (s *Service) Save(ctx context.Context, key string, items []Item) ([]Item, error) {
	return withErrorHandling(ctx, s, "saveStorageItem", key, func(k Key) ([]Item, error) {
		return s.repo.Save(ctx, k, items)
	})
}

// Delete removes the items stored under key.
func (s *Service) Delete(ctx context.Context, key string) (bool, error) {
	return withErrorHandling(ctx, s, "deleteStorageItem", key, func(k Key) (bool, error) {
		return s.repo.Delete(ctx, k)
	})
}

// withErrorHandling parses key, runs fn and reports failures under the
// operation name. Returned errors wrap ErrOperationFailed and the cause.
func withErrorHandling[T any](ctx context.Context, s *Service, op, key string, fn func(Key) (T, error)) (T, error) {
	var zero T

	k, err := ParseKey(key)
	if err == nil {
		var res T
		if res, err = fn(k); err == nil {
			return res, nil
		}
	}

	s.log.ErrorContext(ctx, "Storage operation failed",
		logger.Operation(op),
		logger.StorageKey(key),
		logger.UserID(k.UserID),
		logger.Error(err),
	)
	return zero, errors.Join(ErrOperationFailed, err)
}
