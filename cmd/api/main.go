package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/oklog/run"

	"todo-list/config"
	_ "todo-list/docs" // Swagger docs
	"todo-list/internal/httpserver"
	"todo-list/internal/middleware"
	"todo-list/internal/todo/repository/memory"
	"todo-list/internal/todo/usecase"
	"todo-list/pkg/log"
)

// @title       Todo List API
// @description In-memory to-do list: add, complete and delete tasks, with toast notifications.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	if err := start(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func start() error {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting Todo List...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Todo domain
	sessionRepo := memory.New(memory.RepositoryConfig{
		Logger:           logger,
		MaxSessions:      cfg.Session.MaxSessions,
		TTL:              cfg.Session.TTL,
		MaxNotifications: cfg.Notification.MaxQueued,
	})
	todoUC := usecase.New(logger, sessionRepo, usecase.Config{
		MaxNameLength: cfg.Todo.MaxNameLength,
	})

	// 4. HTTP server
	mw := middleware.New(logger, middleware.Config{
		SessionCookieName:       cfg.Session.CookieName,
		SessionSecureCookie:     cfg.Session.SecureCookie,
		SessionTTL:              cfg.Session.TTL,
		RateLimitEnabled:        cfg.RateLimit.Enabled,
		RateLimitRequestsPerMin: cfg.RateLimit.RequestsPerMin,
		RateLimitMaxClients:     cfg.RateLimit.MaxClients,
	})

	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Middleware:      mw,
		TodoUseCase:     todoUC,
		ConfirmDelete:   cfg.Todo.ConfirmDelete,
		MaxNameLength:   cfg.Todo.MaxNameLength,
	})
	if err != nil {
		return fmt.Errorf("failed to create HTTP server: %w", err)
	}

	var g run.Group

	// OS signals.
	{
		signalCtx, signalCancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer signalCancel()

		g.Add(
			func() error {
				<-signalCtx.Done()
				logger.Info(ctx, "Termination signal received")
				return nil
			},
			func(_ error) {
				signalCancel()
			},
		)
	}

	// HTTP server.
	{
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		g.Add(
			func() error {
				if err := srv.Run(ctx); err != nil {
					return fmt.Errorf("http server failed: %w", err)
				}
				return nil
			},
			func(_ error) {
				cancel()
			},
		)
	}

	if err := g.Run(); err != nil {
		return err
	}

	logger.Infof(ctx, "Todo List stopped, %d sessions dropped", sessionRepo.CountSessions(ctx))
	return nil
}
