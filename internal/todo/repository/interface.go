package repository

import "context"

// Repository is the composed interface for the todo domain data store.
type Repository interface {
	SessionRepository
}

// SessionRepository keeps one to-do list per browser session.
type SessionRepository interface {
	// GetOrCreateSession returns the session for opt.ID, creating an empty one
	// when it does not exist or has expired.
	GetOrCreateSession(ctx context.Context, opt GetOrCreateSessionOptions) (*Session, error)
	GetSession(ctx context.Context, id string) (*Session, error)
	DeleteSession(ctx context.Context, id string) error
	CountSessions(ctx context.Context) int
}
