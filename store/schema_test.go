package store

import "testing"

func TestTodoKeys(t *testing.T) {
	if got := todoPK(42); got != "TODO#42" {
		t.Errorf("todoPK(42) = %s, want TODO#42", got)
	}
	if got := todoSK(); got != "META" {
		t.Errorf("todoSK() = %s, want META", got)
	}
}
