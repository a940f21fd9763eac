package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/saasbase/pkg/environment"
	"github.com/dmitrymomot/saasbase/pkg/httpserver"
	"github.com/dmitrymomot/saasbase/pkg/session"
	"github.com/dmitrymomot/saasbase/svc/storage"
)

// Deps are the services the router serves.
type Deps struct {
	Env          environment.Environment
	Log          *slog.Logger
	Sessions     session.Resolver // nil serves every request without a session
	Storage      *storage.Service
	Checks       map[string]httpserver.Check
	CheckTimeout time.Duration
}

// NewRouter returns the application routes:
//
//	GET /              home page inside the root layout
//	GET /health/live   liveness probe
//	GET /health/ready  readiness probe running deps.Checks
//	/api/storage/*     per-user storage, mounted when deps.Storage is set
func NewRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(environment.Middleware(deps.Env))
	r.Use(session.Middleware(deps.Sessions))

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", httpserver.LivenessHandler())
		r.Get("/ready", httpserver.ReadinessHandler(deps.Log, deps.CheckTimeout, deps.Checks))
	})

	if deps.Storage != nil {
		r.Mount("/api/storage", storageRoutes(deps.Storage))
	}

	r.Method(http.MethodGet, "/", Page(deps.Log, DefaultMetadata, Home()))

	return r
}

// RequestIDExtractor adds the chi request id to log records.
func RequestIDExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := middleware.GetReqID(ctx); id != "" {
			return slog.String("request_id", id), true
		}
		return slog.Attr{}, false
	}
}
