package httpserver

import (
	"context"

	todoHTTP "todo-list/internal/todo/delivery/http"
)

// setupTodoDomain registers the to-do page at / and its JSON API at /api/v1.
func (srv *HTTPServer) setupTodoDomain(ctx context.Context) error {
	h, err := todoHTTP.New(srv.l, srv.todoUC, todoHTTP.Config{
		ConfirmDelete: srv.confirmDelete,
		MaxNameLength: srv.maxNameLength,
	})
	if err != nil {
		return err
	}

	todoHTTP.RegisterPageRoutes(srv.gin, h, srv.mw)
	todoHTTP.RegisterAPIRoutes(srv.gin.Group("/api/v1"), h, srv.mw)

	srv.l.Infof(ctx, "Todo domain registered (confirm_delete=%t)", srv.confirmDelete)
	return nil
}
