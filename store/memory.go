package store

import (
	"context"
	"sync"

	"github.com/sicko7947/todostore"
)

// MemoryStore implements todostore.TodoStore using in-memory storage.
// A single RWMutex guards the collection: List/Get share the read lock,
// every mutation takes the write lock for its whole read-modify-write,
// which is what makes Toggle immune to lost updates.
type MemoryStore struct {
	todos map[uint]todostore.Todo
	order []uint // insertion order, so List is stable
	mu    sync.RWMutex
}

// NewMemoryStore creates a new in-memory todo store
func NewMemoryStore() todostore.TodoStore {
	return &MemoryStore{
		todos: make(map[uint]todostore.Todo),
	}
}

func (s *MemoryStore) Insert(ctx context.Context, todo todostore.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.todos[todo.ID]; exists {
		return todostore.NewDuplicateIDError(todo.ID)
	}

	s.todos[todo.ID] = todo
	s.order = append(s.order, todo.ID)

	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]todostore.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	todos := make([]todostore.Todo, 0, len(s.order))
	for _, id := range s.order {
		todos = append(todos, s.todos[id])
	}

	return todos, nil
}

func (s *MemoryStore) Get(ctx context.Context, id uint) (todostore.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	todo, exists := s.todos[id]
	if !exists {
		return todostore.Todo{}, todostore.NewNotFoundError(id)
	}

	return todo, nil
}

func (s *MemoryStore) Update(ctx context.Context, todo todostore.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.todos[todo.ID]; !exists {
		return todostore.NewNotFoundError(todo.ID)
	}

	s.todos[todo.ID] = todo

	return nil
}

func (s *MemoryStore) Toggle(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo, exists := s.todos[id]
	if !exists {
		return todostore.NewNotFoundError(id)
	}

	todo.Completed = !todo.Completed
	s.todos[id] = todo

	return nil
}
