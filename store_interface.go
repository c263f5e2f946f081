package todostore

import "context"

// TodoStore defines the persistence contract for todo records. It is
// defined in the root package so backend implementations under store/
// and the HTTP layer under server/ can share it without import cycles.
//
// Implementations must keep operations on the same identifier
// linearizable: concurrent Toggle/Update calls on one record may never
// both observe the same pre-state (lost update). Callers always receive
// independent copies; mutating a returned Todo never affects stored state.
type TodoStore interface {
	// Insert adds a new record. A record whose identifier already
	// exists is rejected with ErrCodeDuplicateID.
	Insert(ctx context.Context, todo Todo) error

	// List returns every record currently held, in an order that is
	// stable within a call. An empty store yields an empty slice.
	List(ctx context.Context) ([]Todo, error)

	// Get returns a copy of the matching record.
	Get(ctx context.Context, id uint) (Todo, error)

	// Update replaces name/completed of the record sharing todo.ID.
	// The identifier itself never changes.
	Update(ctx context.Context, todo Todo) error

	// Toggle atomically flips Completed on the matching record.
	Toggle(ctx context.Context, id uint) error
}
