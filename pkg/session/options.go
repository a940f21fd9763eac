package session

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/saasbase/pkg/cookie"
)

// Option is a functional option for configuring the Manager
type Option func(*Manager)

// WithStore sets a custom session store
func WithStore(store Store) Option {
	return func(m *Manager) {
		m.store = store
	}
}

// WithTransport sets a custom session transport
func WithTransport(transport Transport) Option {
	return func(m *Manager) {
		m.transport = transport
	}
}

// WithConfig sets custom configuration
func WithConfig(config Config) Option {
	return func(m *Manager) {
		m.config = config
	}
}

// WithCookieName sets the session cookie name
func WithCookieName(name string) Option {
	return func(m *Manager) {
		m.config.CookieName = name
	}
}

// WithTimeouts sets the idle timeout and the maximum lifetime of sessions
func WithTimeouts(idle, maxLifetime time.Duration) Option {
	return func(m *Manager) {
		m.config.IdleTimeout = idle
		m.config.MaxLifetime = maxLifetime
	}
}

// WithActivityUpdateThreshold sets the minimum time between activity updates
func WithActivityUpdateThreshold(threshold time.Duration) Option {
	return func(m *Manager) {
		m.config.ActivityUpdateThreshold = threshold
	}
}

// WithCookieManager sets the cookie manager for the default cookie transport
func WithCookieManager(cookieMgr *cookie.Manager, opts ...cookie.Option) Option {
	return func(m *Manager) {
		m.cookieManager = cookieMgr
		m.cookieOptions = opts
	}
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		m.log = l
	}
}
