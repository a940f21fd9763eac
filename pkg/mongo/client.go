package mongo

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/saasbase/pkg/logger"
)

const component = "MongoDB"

// Option configures New.
type Option func(*clientOptions)

type clientOptions struct {
	log *slog.Logger
}

// WithLogger sets the logger used for connection events.
func WithLogger(l *slog.Logger) Option {
	return func(o *clientOptions) { o.log = l }
}

// New normalizes cfg.URI, connects and pings the server, retrying up to
// cfg.RetryAttempts times. Credentials never reach the logs.
func New(ctx context.Context, cfg Config, opts ...Option) (*mongo.Client, error) {
	o := &clientOptions{}
	for _, opt := range opts {
		opt(o)
	}
	log := logger.OrNop(o.log).With(logger.Component(component))

	if !ValidateURI(cfg.URI) {
		return nil, errors.Join(ErrFailedToConnectToMongo, ErrInvalidURI)
	}

	uri := NormalizeURI(cfg.URI, cfg.Database)
	database, _ := DatabaseName(uri)
	log.InfoContext(ctx, "Connecting to MongoDB",
		logger.URI(SanitizeURI(uri)),
		logger.Database(database),
		slog.Bool("local", IsLocalURI(uri)),
	)

	attempts := max(cfg.RetryAttempts, 1)

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		client, err := connect(ctx, cfg, uri)
		if err == nil {
			log.InfoContext(ctx, "Connected to MongoDB", logger.Attempt(attempt))
			return client, nil
		}
		lastErr = err
		log.WarnContext(ctx, "MongoDB connection attempt failed",
			logger.Attempt(attempt),
			logger.Error(err),
		)

		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrFailedToConnectToMongo, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, errors.Join(ErrFailedToConnectToMongo, lastErr)
}

func connect(ctx context.Context, cfg Config, uri string) (*mongo.Client, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetRetryWrites(cfg.RetryWrites).
		SetRetryReads(cfg.RetryReads)
	if cfg.ConnectTimeout > 0 {
		clientOpts.SetConnectTimeout(cfg.ConnectTimeout)
	}
	if cfg.MaxPoolSize > 0 {
		clientOpts.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	if cfg.MinPoolSize > 0 {
		clientOpts.SetMinPoolSize(cfg.MinPoolSize)
	}
	if cfg.MaxConnIdleTime > 0 {
		clientOpts.SetMaxConnIdleTime(cfg.MaxConnIdleTime)
	}

	client, err := mongo.Connect(clientOpts)
	if err != nil {
		return nil, err
	}

	pingCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, err
	}
	return client, nil
}

// NewWithDatabase connects like New and returns the handle for cfg.Database
// (DefaultDatabase when empty).
func NewWithDatabase(ctx context.Context, cfg Config, opts ...Option) (*mongo.Database, error) {
	client, err := New(ctx, cfg, opts...)
	if err != nil {
		return nil, err
	}
	name := cfg.Database
	if name == "" {
		name = DefaultDatabase
	}
	return client.Database(name), nil
}

// Disconnect closes client. Failures are logged, not returned, so it can be
// deferred on shutdown paths.
func Disconnect(ctx context.Context, client *mongo.Client, log *slog.Logger) {
	if client == nil {
		return
	}
	log = logger.OrNop(log).With(logger.Component("DB"))
	if err := client.Disconnect(ctx); err != nil {
		log.ErrorContext(ctx, "Error disconnecting all connections", logger.Error(err))
		return
	}
	log.InfoContext(ctx, "All connections closed")
}
