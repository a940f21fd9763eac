package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/dmitrymomot/saasbase/pkg/logger"
)

// Check reports whether a dependency is usable.
type Check func(context.Context) error

// LivenessHandler always answers 200 with body "ALIVE".
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ALIVE"))
	}
}

type readiness struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ReadinessHandler runs every check with the request context, each bounded by
// timeout (no bound when zero). It answers 200 {"status":"READY"} when all
// pass and 503 {"status":"NOT_READY"} otherwise, with a per-check status.
func ReadinessHandler(log *slog.Logger, timeout time.Duration, checks map[string]Check) http.HandlerFunc {
	log = logger.OrNop(log)

	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	slices.Sort(names)

	return func(w http.ResponseWriter, r *http.Request) {
		res := readiness{Status: "READY", Checks: make(map[string]string, len(names))}
		for _, name := range names {
			res.Checks[name] = "ok"
			if err := runCheck(r.Context(), timeout, checks[name]); err != nil {
				log.ErrorContext(r.Context(), "Readiness check failed",
					slog.String("check", name),
					logger.Error(err),
				)
				res.Checks[name] = "failed"
				res.Status = "NOT_READY"
			}
		}

		status := http.StatusOK
		if res.Status != "READY" {
			status = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(res)
	}
}

func runCheck(ctx context.Context, timeout time.Duration, check Check) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return check(ctx)
}
