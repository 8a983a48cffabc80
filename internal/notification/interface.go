package notification

import "todo-list/internal/model"

// Notifier receives toasts emitted by the to-do list.
type Notifier interface {
	Notify(kind model.NotificationKind, message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(kind model.NotificationKind, message string)

// Notify calls f.
func (f NotifierFunc) Notify(kind model.NotificationKind, message string) {
	f(kind, message)
}
