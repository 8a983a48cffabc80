package notification

import (
	"sync"
	"time"
)

// DefaultMaxQueued is used when a Queue is created with a non-positive limit.
const DefaultMaxQueued = 20

// Queue is a bounded FIFO of notifications waiting to be displayed. When full,
// the oldest notification is dropped.
type Queue struct {
	mu    sync.Mutex
	items []Entry
	max   int
	now   func() time.Time
}

// New creates an empty Queue holding at most max notifications.
func New(max int) *Queue {
	if max <= 0 {
		max = DefaultMaxQueued
	}
	return &Queue{
		items: make([]Entry, 0, max),
		max:   max,
		now:   time.Now,
	}
}
