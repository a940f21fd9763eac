package app

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/saasbase/pkg/mongo"
	"github.com/dmitrymomot/saasbase/pkg/session"
	"github.com/dmitrymomot/saasbase/pkg/validator"
	"github.com/dmitrymomot/saasbase/svc/storage"
)

const (
	maxStorageBody    = 1 << 20
	maxStorageTypeLen = 64
)

type storageHandler struct {
	svc *storage.Service
}

// storageRoutes serves the signed-in user's items of one storage type:
//
//	GET    /{type}  list items
//	PUT    /{type}  replace items with the JSON array in the body
//	DELETE /{type}  remove all items
func storageRoutes(svc *storage.Service) http.Handler {
	h := &storageHandler{svc: svc}

	r := chi.NewRouter()
	r.Use(session.RequireAuth)
	r.Use(keyableUser)
	r.Group(func(r chi.Router) {
		r.Use(validStorageType)
		r.Get("/{type}", h.get)
		r.Put("/{type}", h.save)
		r.Delete("/{type}", h.delete)
	})
	return r
}

// keyableUser rejects users whose id contains the key separator: such ids
// would parse back to a shorter id shared with other users.
func keyableUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := session.UserIDFromContext(r.Context())
		if err := validator.Apply(validator.NotContains("user_id", userID, "_")); err != nil {
			writeJSON(w, http.StatusForbidden, errorBody{Error: mongo.FormatError(err, "")})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// validStorageType rejects types that would not round-trip through a key.
func validStorageType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t := chi.URLParam(r, "type")
		err := validator.Apply(
			validator.Required("type", t),
			validator.NotContains("type", t, "_"),
			validator.MaxLen("type", t, maxStorageTypeLen),
		)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: mongo.FormatError(err, "")})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *storageHandler) key(r *http.Request) string {
	userID, _ := session.UserIDFromContext(r.Context())
	return storage.NewKey(chi.URLParam(r, "type"), userID)
}

func (h *storageHandler) get(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Get(r.Context(), h.key(r))
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *storageHandler) save(w http.ResponseWriter, r *http.Request) {
	var items []storage.Item
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxStorageBody)).Decode(&items); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Request body must be a JSON array"})
		return
	}

	saved, err := h.svc.Save(r.Context(), h.key(r), items)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (h *storageHandler) delete(w http.ResponseWriter, r *http.Request) {
	ok, err := h.svc.Delete(r.Context(), h.key(r))
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": ok})
}

// fail reports err with a message that is safe to show to the user.
// Messages of unclassified errors are not exposed.
func (h *storageHandler) fail(w http.ResponseWriter, err error) {
	msg := mongo.FormatError(err, "")
	if msg == err.Error() {
		msg = mongo.DefaultErrorMessage
	}
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: msg})
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
