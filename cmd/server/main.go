// Command server runs the saasbase web application.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/saasbase/app"
	"github.com/dmitrymomot/saasbase/pkg/config"
	"github.com/dmitrymomot/saasbase/pkg/cookie"
	"github.com/dmitrymomot/saasbase/pkg/httpserver"
	"github.com/dmitrymomot/saasbase/pkg/logger"
	"github.com/dmitrymomot/saasbase/pkg/mongo"
	"github.com/dmitrymomot/saasbase/pkg/redis"
	"github.com/dmitrymomot/saasbase/pkg/session"
	"github.com/dmitrymomot/saasbase/svc/storage"
)

const serviceName = "saasbase"

func main() {
	var appCfg config.App
	config.MustLoad(&appCfg)

	log := logger.New(
		logger.WithEnvironment(appCfg.Environment(), serviceName),
		logger.WithContextExtractors(app.RequestIDExtractor()),
	)
	logger.SetAsDefault(log)

	if err := appCfg.Validate(); err != nil {
		log.Error("Invalid environment", logger.Component("Env"), logger.Error(err))
		os.Exit(1)
	}

	if err := run(context.Background(), appCfg, log); err != nil {
		log.Error("Server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, appCfg config.App, log *slog.Logger) error {
	env := appCfg.Environment()

	var (
		mongoCfg   mongo.Config
		redisCfg   redis.Config
		httpCfg    httpserver.Config
		sessionCfg session.Config
	)
	if err := errors.Join(
		config.Load(&mongoCfg),
		config.Load(&redisCfg),
		config.Load(&httpCfg),
		config.Load(&sessionCfg),
	); err != nil {
		return err
	}

	client, err := mongo.New(ctx, mongoCfg, mongo.WithLogger(log))
	if err != nil {
		return err
	}
	db := client.Database(mongoCfg.Database)

	checks := map[string]httpserver.Check{
		"mongodb": mongo.Healthcheck(client),
	}

	var rdb *goredis.Client
	if redisCfg.Enabled() {
		if rdb, err = redis.Connect(ctx, redisCfg, log); err != nil {
			mongo.Disconnect(ctx, client, log)
			return err
		}
		checks["redis"] = redis.Healthcheck(rdb)
	}

	sessionStore := session.NewMongoStore(db)
	if err := sessionStore.EnsureIndexes(ctx); err != nil {
		log.WarnContext(ctx, "Cannot create session indexes", logger.Error(err))
	}

	cookies, err := cookie.New([]string{appCfg.AuthSecret}, cookie.WithSecure(env.IsProduction()))
	if err != nil {
		mongo.Disconnect(ctx, client, log)
		return err
	}
	sessionCfg.SecureCookies = sessionCfg.SecureCookies || env.IsProduction()
	sessions := session.NewFromConfig(sessionCfg,
		session.WithStore(sessionStore),
		session.WithCookieManager(cookies),
		session.WithLogger(log),
	)

	mongoRepo := storage.NewMongoRepository(db)
	if err := mongoRepo.EnsureIndexes(ctx); err != nil {
		log.WarnContext(ctx, "Cannot create storage indexes", logger.Error(err))
	}
	storageRepo := storage.Repository(mongoRepo)
	if rdb != nil {
		storageRepo = storage.NewCachedRepository(storageRepo, rdb, storage.WithCacheLogger(log))
	}
	store := storage.NewService(storage.WithRepository(storageRepo), storage.WithLogger(log))

	router := app.NewRouter(app.Deps{
		Env:          env,
		Log:          log,
		Sessions:     sessions,
		Storage:      store,
		Checks:       checks,
		CheckTimeout: httpCfg.CheckTimeout,
	})

	srv := httpserver.NewFromConfig(httpCfg,
		httpserver.WithLogger(log),
		httpserver.WithStopHook(func(ctx context.Context) {
			_ = sessions.Close()
			if rdb != nil {
				_ = rdb.Close()
			}
			mongo.Disconnect(ctx, client, log)
		}),
	)

	log.InfoContext(ctx, "Starting server", slog.String("env", env.String()))
	return srv.Run(ctx, router)
}
