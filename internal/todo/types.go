package todo

import "todo-list/internal/model"

// --- UseCase Inputs ---

type AddInput struct {
	Name string
}

type IndexInput struct {
	Index int
}

// --- UseCase Outputs ---

// PendingDelete is the task waiting for delete confirmation.
type PendingDelete struct {
	Index int
	Task  model.Task
}

// ListOutput is a snapshot of a session's list.
type ListOutput struct {
	Tasks   []model.Task
	Draft   string
	Pending *PendingDelete
}

// PageOutput is what the page needs for one render. Reading it drains the
// session notifications.
type PageOutput struct {
	ListOutput
	Notifications []model.Notification
}

type AddOutput struct {
	Index int
	Task  model.Task
}

type ToggleOutput struct {
	Index int
	Task  model.Task
}

type RequestDeleteOutput struct {
	Pending PendingDelete
}

type ConfirmDeleteOutput struct {
	Deleted bool
	Index   int
	Task    model.Task
}

type DeleteOutput struct {
	Index int
	Task  model.Task
}
