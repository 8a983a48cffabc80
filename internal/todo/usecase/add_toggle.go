package usecase

import (
	"context"
	"fmt"
	"unicode/utf8"

	"todo-list/internal/model"
	"todo-list/internal/todo"
	"todo-list/internal/todo/repository"
	"todo-list/internal/todo/tasklist"
)

// MsgNameTooLong is shown when a name exceeds the configured limit.
const MsgNameTooLong = "A task name can have at most %d characters"

// Add appends a task. Empty names are rejected by the list itself, which
// also warns the user.
func (uc *implUseCase) Add(ctx context.Context, sc model.Scope, input todo.AddInput) (todo.AddOutput, error) {
	var out todo.AddOutput
	err := uc.withSession(ctx, sc, func(ctx context.Context, s *repository.Session) error {
		name := tasklist.TrimName(input.Name)
		if uc.maxNameLength > 0 && utf8.RuneCountInString(name) > uc.maxNameLength {
			s.List.SetDraft(input.Name)
			s.Notifications.Notify(model.NotificationWarning, fmt.Sprintf(MsgNameTooLong, uc.maxNameLength))
			return todo.ErrNameTooLong
		}

		idx, err := s.List.AddTask(input.Name)
		if err != nil {
			uc.l.Debugf(ctx, "uc.Add AddTask: %v", err)
			return err
		}

		out = todo.AddOutput{Index: idx, Task: s.List.Tasks()[idx]}
		uc.l.Debugf(ctx, "uc.Add: task %d added", idx)
		return nil
	})
	return out, err
}

// Toggle flips the completion flag of a task.
func (uc *implUseCase) Toggle(ctx context.Context, sc model.Scope, input todo.IndexInput) (todo.ToggleOutput, error) {
	var out todo.ToggleOutput
	err := uc.withSession(ctx, sc, func(ctx context.Context, s *repository.Session) error {
		t, err := s.List.ToggleComplete(input.Index)
		if err != nil {
			uc.l.Warnf(ctx, "uc.Toggle ToggleComplete %d: %v", input.Index, err)
			return err
		}
		out = todo.ToggleOutput{Index: input.Index, Task: t}
		return nil
	})
	return out, err
}
