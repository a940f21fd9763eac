package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/saasbase/pkg/cookie"
	"github.com/dmitrymomot/saasbase/pkg/logger"
)

// Manager handles session operations
type Manager struct {
	store         Store
	transport     Transport
	config        Config
	cookieManager *cookie.Manager
	cookieOptions []cookie.Option
	log           *slog.Logger
	activityChan  chan activityUpdate
	done          chan struct{}
}

type activityUpdate struct {
	token string
	time  time.Time
}

// New creates a new session manager with the given options.
// Without WithStore the sessions are kept in memory.
// Without WithTransport a cookie manager is required.
func New(opts ...Option) *Manager {
	m := &Manager{
		config:       DefaultConfig(),
		activityChan: make(chan activityUpdate, 1000),
		done:         make(chan struct{}),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.log = logger.OrNop(m.log).With(logger.Component("Session"))

	if m.store == nil {
		m.store = NewMemoryStore(m.config.CleanupInterval)
	}

	if m.transport == nil {
		if m.cookieManager == nil {
			panic("session: cookie manager is required when using default cookie transport")
		}
		m.transport = NewCookieTransport(m.cookieManager, m.config.CookieName, m.config.SecureCookies, m.cookieOptions...)
	}

	go m.activityWorker()

	return m
}

// Resolve returns the session of the request, or nil when the request has none
// or it has expired. Only store failures are returned as errors.
// A resolved session has its activity recorded in the background.
func (m *Manager) Resolve(ctx context.Context, r *http.Request) (*Session, error) {
	session, err := m.Get(ctx, r)
	switch {
	case err == nil:
		if m.shouldUpdateActivity(session) {
			m.queueActivityUpdate(session.Token)
		}
		return session, nil
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrSessionExpired):
		return nil, nil
	default:
		m.log.ErrorContext(ctx, "Failed to resolve session", logger.Error(err))
		return nil, err
	}
}

// Get retrieves the session of the request.
func (m *Manager) Get(ctx context.Context, r *http.Request) (*Session, error) {
	token, err := m.transport.GetToken(r)
	if err != nil {
		return nil, err
	}

	session, err := m.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	if session.IsExpired() {
		return nil, ErrSessionExpired
	}

	return session, nil
}

// Create signs user in: any current session is replaced by a new one with a
// fresh token.
func (m *Manager) Create(ctx context.Context, w http.ResponseWriter, r *http.Request, user User) (*Session, error) {
	if user.ID == "" {
		return nil, ErrNotAuthenticated
	}

	if token, err := m.transport.GetToken(r); err == nil && token != "" {
		_ = m.store.Delete(ctx, token)
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := NewSession(token, &user, m.calculateExpiry(now, now).Sub(now))
	if err := m.store.Create(ctx, session); err != nil {
		return nil, err
	}

	if err := m.transport.SetToken(w, session.Token, m.config.IdleTimeout); err != nil {
		_ = m.store.Delete(ctx, session.Token)
		return nil, err
	}

	m.log.InfoContext(ctx, "Session created",
		slog.String("session_id", session.ID),
		logger.UserID(user.ID),
	)
	return session, nil
}

func (m *Manager) shouldUpdateActivity(session *Session) bool {
	return time.Since(session.LastActivityAt) >= m.config.ActivityUpdateThreshold
}

// queueActivityUpdate never blocks; updates are dropped when the queue is full.
func (m *Manager) queueActivityUpdate(token string) {
	select {
	case m.activityChan <- activityUpdate{token: token, time: time.Now()}:
	default:
	}
}

func (m *Manager) activityWorker() {
	for {
		select {
		case update := <-m.activityChan:
			m.updateActivity(update)
		case <-m.done:
			for {
				select {
				case update := <-m.activityChan:
					m.updateActivity(update)
				default:
					return
				}
			}
		}
	}
}

func (m *Manager) updateActivity(update activityUpdate) {
	err := m.store.UpdateActivity(context.Background(), update.token, update.time)
	if err != nil && !errors.Is(err, ErrSessionNotFound) {
		m.log.Warn("Failed to update session activity", logger.Error(err))
	}
}

// Close stops the activity worker after draining queued updates.
func (m *Manager) Close() error {
	select {
	case <-m.done:
	default:
		close(m.done)
	}
	return nil
}

// calculateExpiry returns the earlier of the idle expiry and the end of the
// maximum lifetime.
func (m *Manager) calculateExpiry(createdAt, now time.Time) time.Time {
	idleExpiry := now.Add(m.config.IdleTimeout)
	maxExpiry := createdAt.Add(m.config.MaxLifetime)

	if m.config.MaxLifetime > 0 && maxExpiry.Before(idleExpiry) {
		return maxExpiry
	}
	return idleExpiry
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
