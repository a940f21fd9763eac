// Package redis connects to the optional Redis server used as a read-through
// cache in front of MongoDB.
//
//	cfg, err := config.Load[redis.Config]()
//	if cfg.Enabled() {
//		client, err := redis.Connect(ctx, cfg, log)
//		...
//		checks["redis"] = redis.Healthcheck(client)
//	}
//
// Connect retries the ping cfg.RetryAttempts times within cfg.ConnectTimeout.
// Healthcheck adapts a client to the readiness probe signature of httpserver.
package redis
