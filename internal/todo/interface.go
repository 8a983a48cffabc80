package todo

import (
	"context"

	"todo-list/internal/model"
)

// UseCase is the to-do list of the session selected by the scope.
type UseCase interface {
	List(ctx context.Context, sc model.Scope) (ListOutput, error)
	Page(ctx context.Context, sc model.Scope) (PageOutput, error)
	Add(ctx context.Context, sc model.Scope, input AddInput) (AddOutput, error)
	Toggle(ctx context.Context, sc model.Scope, input IndexInput) (ToggleOutput, error)

	// RequestDelete opens the delete prompt for a task; ConfirmDelete and
	// CancelDelete close it.
	RequestDelete(ctx context.Context, sc model.Scope, input IndexInput) (RequestDeleteOutput, error)
	ConfirmDelete(ctx context.Context, sc model.Scope) (ConfirmDeleteOutput, error)
	CancelDelete(ctx context.Context, sc model.Scope) error
	PendingDelete(ctx context.Context, sc model.Scope) (*PendingDelete, error)

	// Delete removes a task without confirmation.
	Delete(ctx context.Context, sc model.Scope, input IndexInput) (DeleteOutput, error)

	Notifications(ctx context.Context, sc model.Scope) ([]model.Notification, error)
	Reset(ctx context.Context, sc model.Scope) error
}
