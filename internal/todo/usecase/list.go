package usecase

import (
	"context"

	"todo-list/internal/model"
	"todo-list/internal/todo"
	"todo-list/internal/todo/repository"
)

// List returns the session's tasks, draft and pending selection.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (todo.ListOutput, error) {
	var out todo.ListOutput
	err := uc.withSession(ctx, sc, func(ctx context.Context, s *repository.Session) error {
		out = snapshot(s.List)
		return nil
	})
	return out, err
}

// Page returns the list plus every notification waiting to be shown.
func (uc *implUseCase) Page(ctx context.Context, sc model.Scope) (todo.PageOutput, error) {
	var out todo.PageOutput
	err := uc.withSession(ctx, sc, func(ctx context.Context, s *repository.Session) error {
		out = todo.PageOutput{
			ListOutput:    snapshot(s.List),
			Notifications: s.Notifications.Drain(),
		}
		return nil
	})
	return out, err
}

// Notifications drains the session notifications, oldest first.
func (uc *implUseCase) Notifications(ctx context.Context, sc model.Scope) ([]model.Notification, error) {
	var out []model.Notification
	err := uc.withSession(ctx, sc, func(ctx context.Context, s *repository.Session) error {
		out = s.Notifications.Drain()
		return nil
	})
	return out, err
}

// Reset forgets the session; the next call starts with an empty list.
func (uc *implUseCase) Reset(ctx context.Context, sc model.Scope) error {
	if sc.SessionID == "" {
		return todo.ErrNoSession
	}
	if err := uc.repo.DeleteSession(ctx, sc.SessionID); err != nil {
		uc.l.Errorf(ctx, "uc.Reset DeleteSession: %v", err)
		return err
	}
	uc.l.Infof(ctx, "uc.Reset: session %s reset", sc.SessionID)
	return nil
}
