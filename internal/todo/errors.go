package todo

import "errors"

// Domain-specific errors for the todo package.
var (
	ErrEmptyName       = errors.New("task name is empty")
	ErrNameTooLong     = errors.New("task name is too long")
	ErrIndexOutOfRange = errors.New("task index out of range")
	ErrNoSession       = errors.New("session id is empty")
)
