// Package tasklist holds the in-memory to-do list and the rules for changing
// it. A Controller is not safe for concurrent use; callers run one operation
// at a time, the way UI event handlers do.
package tasklist

import (
	"todo-list/internal/model"
	"todo-list/internal/notification"
)

// DeleteState is the state of the delete confirmation prompt.
type DeleteState int

const (
	Idle DeleteState = iota
	PendingConfirm
)

func (s DeleteState) String() string {
	if s == PendingConfirm {
		return "pending_confirm"
	}
	return "idle"
}

// Controller owns one ordered task list, the input draft and the pending
// delete selection.
type Controller struct {
	tasks    []model.Task
	draft    string
	pending  int
	notifier notification.Notifier
}

// New creates an empty Controller that reports to n. A nil n discards
// notifications.
func New(n notification.Notifier) *Controller {
	if n == nil {
		n = notification.NotifierFunc(func(model.NotificationKind, string) {})
	}
	return &Controller{
		tasks:    []model.Task{},
		pending:  noPending,
		notifier: n,
	}
}
