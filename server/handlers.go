package server

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/sicko7947/todostore"
)

// handleIndex returns an empty 200, preserved for compatibility with
// clients that probe the root path.
func (s *Server) handleIndex(c fiber.Ctx) error {
	return c.SendString("")
}

func (s *Server) handleHealth(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"service": "todostore",
	})
}

func (s *Server) handleListTodos(c fiber.Ctx) error {
	todos, err := s.store.List(c.Context())
	if err != nil {
		todostore.LogStoreError(requestLoggerFrom(c), "list", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list todos",
		})
	}

	return c.JSON(todos)
}

func (s *Server) handleCreateTodo(c fiber.Ctx) error {
	var todo todostore.Todo
	if err := c.Bind().JSON(&todo); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := s.store.Insert(c.Context(), todo); err != nil {
		if todostore.IsDuplicateID(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Todo already exists",
			})
		}
		todostore.LogStoreError(requestLoggerFrom(c), "insert", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create todo",
		})
	}

	todostore.LogTodoInserted(requestLoggerFrom(c), todo.ID)
	return c.Status(fiber.StatusCreated).JSON(todo)
}

func (s *Server) handleUpdateTodo(c fiber.Ctx) error {
	var todo todostore.Todo
	if err := c.Bind().JSON(&todo); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := s.store.Update(c.Context(), todo); err != nil {
		if todostore.IsNotFound(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Todo not found",
			})
		}
		todostore.LogStoreError(requestLoggerFrom(c), "update", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update todo",
		})
	}

	todostore.LogTodoUpdated(requestLoggerFrom(c), todo.ID)
	return c.JSON(todo)
}

func (s *Server) handleGetTodo(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid todo id",
		})
	}

	todo, err := s.store.Get(c.Context(), id)
	if err != nil {
		if todostore.IsNotFound(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Todo not found",
			})
		}
		todostore.LogStoreError(requestLoggerFrom(c), "get", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get todo",
		})
	}

	return c.JSON(todo)
}

func (s *Server) handleToggleTodo(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid todo id",
		})
	}

	if err := s.store.Toggle(c.Context(), id); err != nil {
		if todostore.IsNotFound(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Todo not found",
			})
		}
		todostore.LogStoreError(requestLoggerFrom(c), "toggle", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to toggle todo",
		})
	}

	todostore.LogTodoToggled(requestLoggerFrom(c), id)
	return c.JSON(fiber.Map{
		"id":      id,
		"message": "Todo toggled successfully",
	})
}

func parseID(c fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
