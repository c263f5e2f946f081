package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sicko7947/todostore"
	"github.com/sicko7947/todostore/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(store.NewMemoryStore(), zerolog.Nop())
}

func doRequest(t *testing.T, srv *Server, method, target string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := srv.App().Test(req)
	require.NoError(t, err)
	return resp
}

func decodeTodo(t *testing.T, resp *http.Response) todostore.Todo {
	t.Helper()

	var todo todostore.Todo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&todo))
	return todo
}

func TestIndex_ReturnsEmpty200(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, srv, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, srv, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListTodos_EmptyStore(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, srv, http.MethodGet, "/todos", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
}

func TestCreateTodo(t *testing.T) {
	srv := newTestServer(t)
	todo := todostore.Todo{ID: 1, Name: "Remember to store the todo", Completed: false}

	resp := doRequest(t, srv, http.MethodPost, "/todos", todo)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// The record must be retrievable exactly as inserted
	resp = doRequest(t, srv, http.MethodGet, "/todos/1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, todo, decodeTodo(t, resp))
}

func TestCreateTodo_AppearsInList(t *testing.T) {
	srv := newTestServer(t)
	todo := todostore.Todo{ID: 1, Name: "persists"}

	resp := doRequest(t, srv, http.MethodPost, "/todos", todo)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodGet, "/todos", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var todos []todostore.Todo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&todos))
	assert.Equal(t, []todostore.Todo{todo}, todos)
}

func TestCreateTodo_Duplicate(t *testing.T) {
	srv := newTestServer(t)
	todo := todostore.Todo{ID: 1, Name: "once"}

	resp := doRequest(t, srv, http.MethodPost, "/todos", todo)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodPost, "/todos", todo)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateTodo_InvalidBody(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/todos", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.App().Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateTodo(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, srv, http.MethodPost, "/todos", todostore.Todo{ID: 1, Name: "before"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	updated := todostore.Todo{ID: 1, Name: "after", Completed: true}
	resp = doRequest(t, srv, http.MethodPut, "/todos", updated)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodGet, "/todos/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, updated, decodeTodo(t, resp))
}

func TestUpdateTodo_NotFound(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, srv, http.MethodPut, "/todos", todostore.Todo{ID: 42, Name: "ghost"})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetTodo_NotFound(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, srv, http.MethodGet, "/todos/42", nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetTodo_InvalidID(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, srv, http.MethodGet, "/todos/abc", nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestToggleTodo(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, srv, http.MethodPost, "/todos", todostore.Todo{ID: 1, Name: "flip me"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodPost, "/toggle/1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodGet, "/todos/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decodeTodo(t, resp).Completed)
}

func TestToggleTodo_NotFound(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, srv, http.MethodPost, "/toggle/1", nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
