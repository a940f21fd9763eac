package app

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/saasbase/pkg/logger"
	"github.com/dmitrymomot/saasbase/pkg/session"
)

// Page renders page inside Layout with the session that session.Middleware
// stored in the request context, or without one.
func Page(log *slog.Logger, meta Metadata, page templ.Component) http.Handler {
	log = logger.OrNop(log)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		s, _ := session.FromContext(ctx)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := Layout(meta, s).Render(templ.WithChildren(ctx, page), w); err != nil {
			log.ErrorContext(ctx, "Failed to render page", logger.Error(err))
		}
	})
}
