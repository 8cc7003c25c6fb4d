package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Pings-Lab/pings-lab.github.io/pkg/logger"
)

// Session is the per-visitor state the browser would otherwise keep in memory:
// both form controllers and the pending toasts. Nothing here is persisted.
type Session struct {
	ID      string
	Contact *ContactController
	Notify  *NotifyController
	Toasts  *Toaster

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// SessionStore keeps sessions in memory and evicts idle ones.
type SessionStore struct {
	gateway  Gateway
	endpoint string
	validate *validator.Validate
	ttl      time.Duration
	now      func() time.Time

	sessions sync.Map
}

func NewSessionStore(gateway Gateway, endpoint string, validate *validator.Validate, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &SessionStore{
		gateway:  gateway,
		endpoint: endpoint,
		validate: validate,
		ttl:      ttl,
		now:      time.Now,
	}
}

// NewSession builds a detached session with fresh controllers. The JSON API
// uses these for one-shot submissions.
func (s *SessionStore) NewSession() *Session {
	toasts := NewToaster()
	return &Session{
		ID:       uuid.NewString(),
		Contact:  NewContactController(s.gateway, s.endpoint, s.validate, toasts),
		Notify:   NewNotifyController(s.gateway, s.endpoint, s.validate, toasts),
		Toasts:   toasts,
		lastSeen: s.now(),
	}
}

// Get returns a live session and refreshes its idle timer.
func (s *SessionStore) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	v, ok := s.sessions.Load(id)
	if !ok {
		return nil, false
	}
	sess := v.(*Session)
	now := s.now()
	if sess.idleSince(now) > s.ttl {
		s.sessions.Delete(id)
		return nil, false
	}
	sess.touch(now)
	return sess, true
}

// GetOrCreate returns the session for id, starting a new one when it is
// unknown or expired. created reports whether a new ID was issued.
func (s *SessionStore) GetOrCreate(id string) (sess *Session, created bool) {
	if sess, ok := s.Get(id); ok {
		return sess, false
	}
	sess = s.NewSession()
	s.sessions.Store(sess.ID, sess)
	return sess, true
}

// Sweep removes sessions idle longer than the TTL and returns how many went.
func (s *SessionStore) Sweep() int {
	now := s.now()
	removed := 0
	s.sessions.Range(func(key, value interface{}) bool {
		if value.(*Session).idleSince(now) > s.ttl {
			s.sessions.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

// Len counts live sessions.
func (s *SessionStore) Len() int {
	n := 0
	s.sessions.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return n
}

// Run sweeps on every interval until ctx is done.
func (s *SessionStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				logger.Log.Debug("expired visitor sessions", "count", n)
			}
		}
	}
}
