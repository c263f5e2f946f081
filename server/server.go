// Package server exposes the todo store over HTTP. It is thin plumbing:
// requests are decoded into domain types, handed to the TodoStore, and
// results encoded back. Handlers depend only on the store interface, so
// the backend can be swapped at startup without touching this package.
package server

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sicko7947/todostore"
)

// Server wraps the fiber application and its dependencies
type Server struct {
	app    *fiber.App
	store  todostore.TodoStore
	logger zerolog.Logger
}

// New creates a Server with all routes registered
func New(store todostore.TodoStore, logger zerolog.Logger) *Server {
	s := &Server{
		app:    fiber.New(),
		store:  store,
		logger: logger,
	}

	s.app.Use(s.requestLogger)
	s.registerRoutes()

	return s
}

// App returns the underlying fiber application, used by tests to drive
// requests through app.Test without a listening socket.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen starts serving on addr and blocks until shutdown
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the server within the given timeout
func (s *Server) Shutdown(timeout time.Duration) error {
	return s.app.ShutdownWithTimeout(timeout)
}

func (s *Server) registerRoutes() {
	s.app.Get("/", s.handleIndex)
	s.app.Get("/health", s.handleHealth)
	s.app.Get("/todos", s.handleListTodos)
	s.app.Post("/todos", s.handleCreateTodo)
	s.app.Put("/todos", s.handleUpdateTodo)
	s.app.Get("/todos/:id", s.handleGetTodo)
	s.app.Post("/toggle/:id", s.handleToggleTodo)
}

// requestLogger attaches a request-scoped logger under "logger" and logs
// request completion with the assigned request ID.
func (s *Server) requestLogger(c fiber.Ctx) error {
	requestID := uuid.NewString()
	logger := todostore.RequestLogger(s.logger, requestID, c.Method(), c.Path())
	c.Locals("logger", logger)

	start := time.Now()
	err := c.Next()

	logger.Info().
		Str("event", todostore.EventRequestCompleted).
		Int("status", c.Response().StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("Request completed")

	return err
}

func requestLoggerFrom(c fiber.Ctx) zerolog.Logger {
	if logger, ok := c.Locals("logger").(zerolog.Logger); ok {
		return logger
	}
	return zerolog.Nop()
}
