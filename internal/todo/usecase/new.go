package usecase

import (
	"time"

	"todo-list/internal/todo"
	"todo-list/internal/todo/repository"
	pkgLog "todo-list/pkg/log"
)

// DefaultMaxNameLength limits task names in runes.
const DefaultMaxNameLength = 255

type implUseCase struct {
	l             pkgLog.Logger
	repo          repository.Repository
	maxNameLength int
	now           func() time.Time
}

// Config is the dependency bag for New.
type Config struct {
	// MaxNameLength of 0 disables the limit.
	MaxNameLength int
}

// New creates a new todo UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, cfg Config) *implUseCase {
	return &implUseCase{
		l:             l,
		repo:          repo,
		maxNameLength: cfg.MaxNameLength,
		now:           time.Now,
	}
}

var _ todo.UseCase = (*implUseCase)(nil)
