package model

// Task is one entry of a to-do list. Tasks have no ID: a task is addressed
// by its position in the list.
type Task struct {
	Name        string
	IsCompleted bool
}
