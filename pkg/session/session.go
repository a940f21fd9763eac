package session

import (
	"time"

	"github.com/google/uuid"
)

// User is the signed-in user a session belongs to.
type User struct {
	ID    string `json:"id" bson:"id"`
	Email string `json:"email,omitempty" bson:"email,omitempty"`
	Name  string `json:"name,omitempty" bson:"name,omitempty"`
	Image string `json:"image,omitempty" bson:"image,omitempty"`
}

// Session is a server-side session. Token is the secret carried by the client;
// ID is a public identifier that is safe to log.
type Session struct {
	Token          string         `json:"-" bson:"_id"`
	ID             string         `json:"id" bson:"session_id"`
	User           *User          `json:"user,omitempty" bson:"user,omitempty"`
	Data           map[string]any `json:"data,omitempty" bson:"data,omitempty"`
	ExpiresAt      time.Time      `json:"expires" bson:"expires_at"`
	LastActivityAt time.Time      `json:"-" bson:"last_activity_at"`
	CreatedAt      time.Time      `json:"-" bson:"created_at"`
}

// NewSession creates a session for user that expires after ttl.
func NewSession(token string, user *User, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		Token:          token,
		ID:             uuid.NewString(),
		User:           user,
		Data:           make(map[string]any),
		ExpiresAt:      now.Add(ttl),
		LastActivityAt: now,
		CreatedAt:      now,
	}
}

// IsAuthenticated returns true if the session has a user.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.User != nil && s.User.ID != ""
}

// UserID returns the id of the session user, or "".
func (s *Session) UserID() string {
	if !s.IsAuthenticated() {
		return ""
	}
	return s.User.ID
}

// IsExpired returns true if the session has expired.
func (s *Session) IsExpired() bool {
	return s != nil && time.Now().After(s.ExpiresAt)
}

// Get retrieves a value from session data.
func (s *Session) Get(key string) (any, bool) {
	if s == nil || s.Data == nil {
		return nil, false
	}
	val, ok := s.Data[key]
	return val, ok
}

// GetString retrieves a string value from session data.
func (s *Session) GetString(key string) (string, bool) {
	val, ok := s.Get(key)
	if !ok {
		return "", false
	}
	str, ok := val.(string)
	return str, ok
}

// Set stores a value in session data.
func (s *Session) Set(key string, value any) {
	if s == nil {
		return
	}
	if s.Data == nil {
		s.Data = make(map[string]any)
	}
	s.Data[key] = value
}

// Delete removes a value from session data.
func (s *Session) Delete(key string) {
	if s == nil || s.Data == nil {
		return
	}
	delete(s.Data, key)
}

// Touch updates the last activity time.
func (s *Session) Touch() {
	if s == nil {
		return
	}
	s.LastActivityAt = time.Now()
}

func (s *Session) clone() *Session {
	c := *s
	if s.User != nil {
		u := *s.User
		c.User = &u
	}
	if s.Data != nil {
		c.Data = make(map[string]any, len(s.Data))
		for k, v := range s.Data {
			c.Data[k] = v
		}
	}
	return &c
}
