package session

import (
	"net/http"
)

// Middleware resolves the session of every request and stores it in the
// request context. Requests without a session, or whose session cannot be
// resolved, pass through unchanged.
func Middleware(resolver Resolver) func(http.Handler) http.Handler {
	if resolver == nil {
		resolver = Anonymous
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := resolver.Resolve(r.Context(), r)
			if err != nil || session == nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

// RequireAuth responds 401 unless Middleware stored an authenticated session
// in the request context.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, _ := FromContext(r.Context())
		if !session.IsAuthenticated() {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
