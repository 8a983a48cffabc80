package notification

import (
	"github.com/oklog/ulid/v2"

	"todo-list/internal/model"
)

// Entry is a queued notification.
type Entry = model.Notification

// Notify implements Notifier.
func (q *Queue) Notify(kind model.NotificationKind, message string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == q.max {
		copy(q.items, q.items[1:])
		q.items = q.items[:len(q.items)-1]
	}

	q.items = append(q.items, Entry{
		ID:        ulid.Make().String(),
		Kind:      kind,
		Message:   message,
		CreatedAt: q.now(),
	})
}

// Drain returns every queued notification, oldest first, and empties the queue.
func (q *Queue) Drain() []Entry {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Entry, len(q.items))
	copy(out, q.items)
	q.items = q.items[:0]
	return out
}

// Peek returns the queued notifications without removing them.
func (q *Queue) Peek() []Entry {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Entry, len(q.items))
	copy(out, q.items)
	return out
}

// Len returns the number of queued notifications.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

var _ Notifier = (*Queue)(nil)
