package repository

import (
	"sync"
	"time"

	"todo-list/internal/notification"
	"todo-list/internal/todo/tasklist"
)

// Session is the state of one browser session. Callers must hold the lock
// while using List or Notifications.
type Session struct {
	ID            string
	CreatedAt     time.Time
	List          *tasklist.Controller
	Notifications *notification.Queue

	mu         sync.Mutex
	lastSeenAt time.Time
}

// NewSession creates a session with an empty list whose notifications go to
// a queue holding at most maxQueued entries.
func NewSession(id string, maxQueued int, now time.Time) *Session {
	q := notification.New(maxQueued)
	return &Session{
		ID:            id,
		CreatedAt:     now,
		List:          tasklist.New(q),
		Notifications: q,
		lastSeenAt:    now,
	}
}

// Lock acquires the session lock.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session lock.
func (s *Session) Unlock() { s.mu.Unlock() }

// Touch records activity. Must be called with the lock held.
func (s *Session) Touch(now time.Time) { s.lastSeenAt = now }

// LastSeenAt returns the last recorded activity. Must be called with the
// lock held.
func (s *Session) LastSeenAt() time.Time { return s.lastSeenAt }
