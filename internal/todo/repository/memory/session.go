package memory

import (
	"context"
	"fmt"

	"todo-list/internal/todo/repository"
)

// GetOrCreateSession returns the session for opt.ID. Every access restarts
// the session TTL.
func (r *Repository) GetOrCreateSession(ctx context.Context, opt repository.GetOrCreateSessionOptions) (*repository.Session, error) {
	if opt.ID == "" {
		return nil, repository.ErrEmptySessionID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions.Get(opt.ID)
	if !ok {
		s = repository.NewSession(opt.ID, r.maxQueued, r.now())
		r.l.Debugf(ctx, "repository.memory.GetOrCreateSession: created session %s", opt.ID)
	}
	r.sessions.Add(opt.ID, s)

	return s, nil
}

// GetSession returns an existing session.
func (r *Repository) GetSession(ctx context.Context, id string) (*repository.Session, error) {
	s, ok := r.sessions.Get(id)
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, repository.ErrSessionNotFound)
	}
	return s, nil
}

// DeleteSession drops a session. Deleting a missing session is not an error.
func (r *Repository) DeleteSession(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.deletingMu.Lock()
	r.deleting[id] = struct{}{}
	r.deletingMu.Unlock()

	removed := r.sessions.Remove(id)

	r.deletingMu.Lock()
	delete(r.deleting, id)
	r.deletingMu.Unlock()

	if removed {
		r.l.Debugf(ctx, "repository.memory.DeleteSession: session %s reset", id)
	}
	return nil
}

// CountSessions returns the number of live sessions.
func (r *Repository) CountSessions(ctx context.Context) int {
	return r.sessions.Len()
}
