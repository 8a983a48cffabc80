package tasklist

import (
	"fmt"
	"strings"
	"unicode"

	"todo-list/internal/model"
	"todo-list/internal/todo"
)

// SetDraft stores the text input value with leading whitespace removed.
func (c *Controller) SetDraft(raw string) {
	c.draft = TrimName(raw)
}

// Draft returns the current text input value.
func (c *Controller) Draft() string {
	return c.draft
}

// AddTask appends a new incomplete task named rawName and returns its index.
// An empty name is rejected with a warning and leaves the list and draft
// untouched.
func (c *Controller) AddTask(rawName string) (int, error) {
	name := TrimName(rawName)
	c.draft = name

	if name == "" {
		c.notifier.Notify(model.NotificationWarning, MsgEmptyName)
		return noPending, todo.ErrEmptyName
	}

	c.tasks = append(c.tasks, model.Task{Name: name})
	c.draft = ""
	c.notifier.Notify(model.NotificationSuccess, fmt.Sprintf(MsgAdded, name))

	return len(c.tasks) - 1, nil
}

// ToggleComplete flips the completion flag of the task at index. Only the
// incomplete to complete transition is announced.
func (c *Controller) ToggleComplete(index int) (model.Task, error) {
	if !c.valid(index) {
		return model.Task{}, todo.ErrIndexOutOfRange
	}

	t := &c.tasks[index]
	t.IsCompleted = !t.IsCompleted
	if t.IsCompleted {
		c.notifier.Notify(model.NotificationSuccess, fmt.Sprintf(MsgCompleted, t.Name))
	}

	return *t, nil
}

// RequestDelete selects the task at index for deletion and opens the prompt.
// A previous selection is replaced.
func (c *Controller) RequestDelete(index int) error {
	if !c.valid(index) {
		return todo.ErrIndexOutOfRange
	}
	c.pending = index
	return nil
}

// ConfirmDelete removes the selected task and closes the prompt. Without a
// selection it does nothing and reports false.
func (c *Controller) ConfirmDelete() (model.Task, bool) {
	if !c.valid(c.pending) {
		c.pending = noPending
		return model.Task{}, false
	}
	return c.remove(c.pending), true
}

// CancelDelete closes the prompt without touching the list.
func (c *Controller) CancelDelete() {
	c.pending = noPending
}

// DeleteTask removes the task at index immediately.
func (c *Controller) DeleteTask(index int) (model.Task, error) {
	if !c.valid(index) {
		return model.Task{}, todo.ErrIndexOutOfRange
	}
	return c.remove(index), nil
}

// Tasks returns a copy of the list.
func (c *Controller) Tasks() []model.Task {
	out := make([]model.Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Len returns the number of tasks.
func (c *Controller) Len() int {
	return len(c.tasks)
}

// Pending returns the selected index, if any.
func (c *Controller) Pending() (int, bool) {
	if c.pending == noPending {
		return 0, false
	}
	return c.pending, true
}

// State reports whether the delete prompt is open.
func (c *Controller) State() DeleteState {
	if c.pending == noPending {
		return Idle
	}
	return PendingConfirm
}

// remove splices out one task. The pending selection keeps pointing at the
// same task, or is cleared when that task is the one removed.
func (c *Controller) remove(index int) model.Task {
	removed := c.tasks[index]
	c.tasks = append(c.tasks[:index], c.tasks[index+1:]...)

	switch {
	case c.pending == index:
		c.pending = noPending
	case c.pending > index:
		c.pending--
	}

	c.notifier.Notify(model.NotificationInfo, MsgDeleted)
	return removed
}

func (c *Controller) valid(index int) bool {
	return index >= 0 && index < len(c.tasks)
}

// TrimName strips leading whitespace from s, the form in which names
// are stored.
func TrimName(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}
