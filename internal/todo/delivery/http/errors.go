package http

import (
	"errors"

	"todo-list/internal/todo"
	pkgErrors "todo-list/pkg/errors"
)

var (
	errInvalidIndex = errors.New("invalid task index")
	errNoScope      = errors.New("missing session scope")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) *pkgErrors.HTTPError {
	switch {
	case errors.Is(err, todo.ErrEmptyName):
		return pkgErrors.NewBadRequest("task name is empty")
	case errors.Is(err, todo.ErrNameTooLong):
		return pkgErrors.NewBadRequest("task name is too long")
	case errors.Is(err, todo.ErrIndexOutOfRange):
		return pkgErrors.NewNotFound("task not found")
	case errors.Is(err, errInvalidIndex):
		return pkgErrors.NewBadRequest("invalid task index")
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// isUserError reports errors caused by the request rather than the server.
// The page answers them with a redirect; the toast explains what happened.
func isUserError(err error) bool {
	return errors.Is(err, todo.ErrEmptyName) ||
		errors.Is(err, todo.ErrNameTooLong) ||
		errors.Is(err, todo.ErrIndexOutOfRange)
}
