package usecase_test

import (
	"context"
	"errors"

	"todo-list/internal/todo/repository"
)

var errStore = errors.New("store down")

type failingRepo struct{}

func (failingRepo) GetOrCreateSession(ctx context.Context, opt repository.GetOrCreateSessionOptions) (*repository.Session, error) {
	return nil, errStore
}

func (failingRepo) GetSession(ctx context.Context, id string) (*repository.Session, error) {
	return nil, errStore
}

func (failingRepo) DeleteSession(ctx context.Context, id string) error {
	return errStore
}

func (failingRepo) CountSessions(ctx context.Context) int {
	return 0
}
