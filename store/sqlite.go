package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sicko7947/todostore"
	"modernc.org/sqlite"
)

// SQLite extended result codes for primary key / unique violations
const (
	sqliteConstraintPrimaryKey = 1555
	sqliteConstraintUnique     = 2067
)

// SQLiteStore implements todostore.TodoStore backed by a single-table
// SQLite schema. The pool is capped at one connection, so every
// statement executes through a serialized context and read-modify-write
// operations cannot interleave at the storage engine level.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (or creates) the database at path and runs the
// idempotent schema DDL. Any failure here means the backend is
// unavailable, which is fatal for the caller: the store must not become
// reachable before the table exists.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, todostore.NewStorageUnavailableError(err.Error())
	}

	// Serialize all access through a single connection
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, todostore.NewStorageUnavailableError(err.Error())
	}

	if _, err := db.Exec(createTodosTableSQL); err != nil {
		_ = db.Close()
		return nil, todostore.NewStorageUnavailableError(err.Error())
	}

	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Insert(ctx context.Context, todo todostore.Todo) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO todos (id, name, completed) VALUES (?, ?, ?)`,
		todo.ID, todo.Name, todo.Completed,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return todostore.NewDuplicateIDError(todo.ID)
		}
		return fmt.Errorf("failed to insert todo: %w", err)
	}

	return nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]todostore.Todo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, completed FROM todos ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	todos := []todostore.Todo{}
	for rows.Next() {
		var todo todostore.Todo
		if err := rows.Scan(&todo.ID, &todo.Name, &todo.Completed); err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, todo)
	}

	return todos, rows.Err()
}

func (s *SQLiteStore) Get(ctx context.Context, id uint) (todostore.Todo, error) {
	var todo todostore.Todo
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, completed FROM todos WHERE id = ?`, id)
	if err := row.Scan(&todo.ID, &todo.Name, &todo.Completed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return todostore.Todo{}, todostore.NewNotFoundError(id)
		}
		return todostore.Todo{}, fmt.Errorf("failed to get todo: %w", err)
	}

	return todo, nil
}

func (s *SQLiteStore) Update(ctx context.Context, todo todostore.Todo) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE todos SET name = ?, completed = ? WHERE id = ?`,
		todo.Name, todo.Completed, todo.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}
	if affected == 0 {
		return todostore.NewNotFoundError(todo.ID)
	}

	return nil
}

func (s *SQLiteStore) Toggle(ctx context.Context, id uint) error {
	// One statement, so the flip is atomic: concurrent toggles on the
	// same id can never both read the pre-toggle value.
	result, err := s.db.ExecContext(ctx,
		`UPDATE todos SET completed = NOT completed WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to toggle todo: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to toggle todo: %w", err)
	}
	if affected == 0 {
		return todostore.NewNotFoundError(id)
	}

	return nil
}

func isConstraintViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code() == sqliteConstraintPrimaryKey || se.Code() == sqliteConstraintUnique
}
