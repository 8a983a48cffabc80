package usecase

import (
	"context"

	"todo-list/internal/model"
	"todo-list/internal/todo"
	"todo-list/internal/todo/repository"
	"todo-list/internal/todo/tasklist"
	pkgLog "todo-list/pkg/log"
)

// withSession runs fn holding the session lock, so calls for one session run
// one at a time, in arrival order.
func (uc *implUseCase) withSession(ctx context.Context, sc model.Scope, fn func(ctx context.Context, s *repository.Session) error) error {
	if sc.SessionID == "" {
		return todo.ErrNoSession
	}

	s, err := uc.repo.GetOrCreateSession(ctx, repository.GetOrCreateSessionOptions{ID: sc.SessionID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.withSession GetOrCreateSession: %v", err)
		return err
	}

	ctx = pkgLog.WithFields(ctx, "session_id", sc.SessionID)

	s.Lock()
	defer s.Unlock()
	s.Touch(uc.now())

	return fn(ctx, s)
}

func snapshot(list *tasklist.Controller) todo.ListOutput {
	return todo.ListOutput{
		Tasks:   list.Tasks(),
		Draft:   list.Draft(),
		Pending: pendingOf(list),
	}
}

func pendingOf(list *tasklist.Controller) *todo.PendingDelete {
	idx, ok := list.Pending()
	if !ok {
		return nil
	}
	return &todo.PendingDelete{Index: idx, Task: list.Tasks()[idx]}
}
