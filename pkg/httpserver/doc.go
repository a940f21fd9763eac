// Package httpserver runs an http.Handler with graceful shutdown and provides
// the liveness and readiness probe handlers.
//
//	srv := httpserver.NewFromConfig(cfg,
//		httpserver.WithLogger(log),
//		httpserver.WithStopHook(func(ctx context.Context) { mongo.Disconnect(ctx, client, log) }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Run returns when ctx is done, SIGINT or SIGTERM is received, or Shutdown is
// called. ReadinessHandler runs named checks such as mongo.Healthcheck and
// answers 503 when one fails.
package httpserver
