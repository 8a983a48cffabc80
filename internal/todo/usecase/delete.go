package usecase

import (
	"context"

	"todo-list/internal/model"
	"todo-list/internal/todo"
	"todo-list/internal/todo/repository"
)

// RequestDelete selects a task for deletion, replacing any earlier selection.
func (uc *implUseCase) RequestDelete(ctx context.Context, sc model.Scope, input todo.IndexInput) (todo.RequestDeleteOutput, error) {
	var out todo.RequestDeleteOutput
	err := uc.withSession(ctx, sc, func(ctx context.Context, s *repository.Session) error {
		if err := s.List.RequestDelete(input.Index); err != nil {
			uc.l.Warnf(ctx, "uc.RequestDelete RequestDelete %d: %v", input.Index, err)
			return err
		}
		out = todo.RequestDeleteOutput{Pending: *pendingOf(s.List)}
		return nil
	})
	return out, err
}

// ConfirmDelete removes the selected task. Confirming with nothing selected
// reports Deleted=false.
func (uc *implUseCase) ConfirmDelete(ctx context.Context, sc model.Scope) (todo.ConfirmDeleteOutput, error) {
	var out todo.ConfirmDeleteOutput
	err := uc.withSession(ctx, sc, func(ctx context.Context, s *repository.Session) error {
		idx, _ := s.List.Pending()
		t, ok := s.List.ConfirmDelete()
		if !ok {
			uc.l.Debugf(ctx, "uc.ConfirmDelete: nothing pending")
			return nil
		}
		out = todo.ConfirmDeleteOutput{Deleted: true, Index: idx, Task: t}
		return nil
	})
	return out, err
}

// CancelDelete closes the prompt.
func (uc *implUseCase) CancelDelete(ctx context.Context, sc model.Scope) error {
	return uc.withSession(ctx, sc, func(ctx context.Context, s *repository.Session) error {
		s.List.CancelDelete()
		return nil
	})
}

// PendingDelete returns the selected task, or nil.
func (uc *implUseCase) PendingDelete(ctx context.Context, sc model.Scope) (*todo.PendingDelete, error) {
	var out *todo.PendingDelete
	err := uc.withSession(ctx, sc, func(ctx context.Context, s *repository.Session) error {
		out = pendingOf(s.List)
		return nil
	})
	return out, err
}

// Delete removes a task immediately.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, input todo.IndexInput) (todo.DeleteOutput, error) {
	var out todo.DeleteOutput
	err := uc.withSession(ctx, sc, func(ctx context.Context, s *repository.Session) error {
		t, err := s.List.DeleteTask(input.Index)
		if err != nil {
			uc.l.Warnf(ctx, "uc.Delete DeleteTask %d: %v", input.Index, err)
			return err
		}
		out = todo.DeleteOutput{Index: input.Index, Task: t}
		return nil
	})
	return out, err
}
