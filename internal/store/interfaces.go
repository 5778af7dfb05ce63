package store

import (
	"context"
	"time"

	"todosync/models"
)

// TodoRepository is the persistence boundary for synchronized todo records.
// All methods identify records by their client-generated identifier; the
// server-internal storage key never crosses this boundary outward.
type TodoRepository interface {
	// Save inserts a new record with version 1 and server-assigned
	// timestamps, writing the generated fields back into todo.
	// Returns ErrClientIDExists when the client identifier is taken,
	// including by a soft-deleted record.
	Save(ctx context.Context, todo *models.Todo) error

	// GetActive returns every non-tombstoned record, newest first.
	GetActive(ctx context.Context) ([]models.Todo, error)

	// GetChangesSince returns the server clock at query execution and
	// every record mutated strictly after since, oldest change first.
	// A nil since returns the full history, tombstones included.
	GetChangesSince(ctx context.Context, since *time.Time) (time.Time, []models.Todo, error)

	// Update applies the non-nil fields of update to the record, bumping
	// its version and updated_at in the same statement. Returns the
	// updated record, or ErrTodoNotFound.
	Update(ctx context.Context, clientID string, update models.UpdateTodoRequest) (models.Todo, error)

	// SoftDelete sets the tombstone flag, bumping version and updated_at.
	// Deleting an already-deleted record succeeds and bumps again.
	// Returns the updated record, or ErrTodoNotFound.
	SoftDelete(ctx context.Context, clientID string) (models.Todo, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
