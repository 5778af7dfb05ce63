package service

import (
	"context"

	"todosync/models"
)

// TodoService exposes the business operations of the sync record store to
// the transport layer. Implementations validate input before touching the
// repository; a failed validation never reaches persistence.
type TodoService interface {
	// CreateTodo validates the request and persists a new record with
	// version 1.
	CreateTodo(ctx context.Context, req models.CreateTodoRequest) (models.Todo, error)

	// ListActive returns the active snapshot: every non-tombstoned
	// record, newest first.
	ListActive(ctx context.Context) ([]models.Todo, error)

	// GetChangesSince parses the raw `since` query value and returns the
	// records mutated after it together with the server clock to use as
	// the next `since`. An empty or unparsable value means no lower
	// bound.
	GetChangesSince(ctx context.Context, rawSince string) (models.SyncResponse, error)

	// UpdateTodo applies a partial update to the record identified by
	// clientID, bumping its version.
	UpdateTodo(ctx context.Context, clientID string, req models.UpdateTodoRequest) (models.Todo, error)

	// DeleteTodo tombstones the record identified by clientID, bumping
	// its version. Repeated deletes keep succeeding.
	DeleteTodo(ctx context.Context, clientID string) (models.Todo, error)
}
