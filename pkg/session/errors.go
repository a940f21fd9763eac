package session

import "errors"

var (
	// ErrInvalidSession indicates a session without a token was passed to a store
	ErrInvalidSession = errors.New("session.invalid")

	// ErrSessionExpired indicates the session has expired
	ErrSessionExpired = errors.New("session.expired")

	// ErrSessionNotFound indicates no session was found
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrTokenGeneration indicates token generation failed
	ErrTokenGeneration = errors.New("session.token_generation_failed")

	// ErrStoreFailure wraps errors returned by the backing database
	ErrStoreFailure = errors.New("session.store_failure")

	// ErrNotAuthenticated indicates an operation needs a signed-in user
	ErrNotAuthenticated = errors.New("session.not_authenticated")
)
