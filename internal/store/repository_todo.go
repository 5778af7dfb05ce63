package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"todosync/internal/logger"
	"todosync/models"
)

// todoRepository is the PostgreSQL-backed implementation of [TodoRepository].
// It executes all record operations directly against the "todos" table using
// the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (client_id, version, etc.).
//
// Concurrency: every mutation folds the version bump and the updated_at
// reset into a single UPDATE statement, so two racing mutations on the same
// client_id serialize on the row lock and never lose an increment. Mutations
// on different records do not contend.
type todoRepository struct {
	*DB
	logger *logger.Logger
}

// NewTodoRepository constructs a [TodoRepository] backed by the provided
// database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewTodoRepository(db *DB, logger *logger.Logger) TodoRepository {
	return &todoRepository{
		DB:     db,
		logger: logger,
	}
}

// scanTodo reads one row in todoColumns order into a models.Todo.
func scanTodo(row interface{ Scan(dest ...any) error }, todo *models.Todo) error {
	return row.Scan(
		&todo.ID,
		&todo.ClientID,
		&todo.Title,
		&todo.Description,
		&todo.Completed,
		&todo.Deleted,
		&todo.Version,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)
}

// Save inserts a new todo record. The database assigns the storage key,
// version 1, and created_at = updated_at = now(); the generated values are
// written back into todo via the RETURNING clause.
//
// A unique-constraint violation on client_id is translated to
// [ErrClientIDExists] so that callers can map it to a conflict without
// inspecting driver errors.
func (t *todoRepository) Save(ctx context.Context, todo *models.Todo) error {
	log := logger.FromContext(ctx)

	log.Debug().
		Str("func", "todoRepository.Save").
		Str("client_id", todo.ClientID).
		Msg("saving new todo record")

	err := scanTodo(t.DB.QueryRowContext(ctx, saveTodo,
		todo.ClientID,
		todo.Title,
		todo.Description,
		todo.Completed,
	), todo)

	if err != nil {
		if isUniqueViolation(err) {
			log.Warn().
				Str("func", "todoRepository.Save").
				Str("client_id", todo.ClientID).
				Msg("client id already exists")
			return fmt.Errorf("%w: %q", ErrClientIDExists, todo.ClientID)
		}

		log.Err(err).
			Str("func", "todoRepository.Save").
			Str("client_id", todo.ClientID).
			Bool("retryable", t.errorClassificator.Classify(err) == Retryable).
			Msg("failed to save todo")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Info().
		Str("func", "todoRepository.Save").
		Str("client_id", todo.ClientID).
		Int64("id", todo.ID).
		Msg("successfully saved todo record")

	return nil
}

// GetActive returns every record whose tombstone flag is unset, ordered by
// created_at descending (newest first). The result is a finite,
// re-queryable snapshot.
func (t *todoRepository) GetActive(ctx context.Context) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectActiveQuery(ctx)
	if err != nil {
		log.Err(err).
			Str("func", "todoRepository.GetActive").
			Msg("failed to build query")
		return nil, err
	}

	rows, queryErr := t.DB.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "todoRepository.GetActive").
			Msg("failed to execute query for getting active todos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	todos := make([]models.Todo, 0, 50)

	for rows.Next() {
		var todo models.Todo

		if scanErr := scanTodo(rows, &todo); scanErr != nil {
			log.Err(scanErr).
				Str("func", "todoRepository.GetActive").
				Msg("failed to scan todo row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		todos = append(todos, todo)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "todoRepository.GetActive").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return todos, nil
}

// GetChangesSince returns the server clock captured at query execution and
// every record — tombstones included — whose updated_at is strictly greater
// than since, ordered by updated_at ascending. A nil since means no lower
// bound.
//
// Both statements run inside one transaction and now() is the transaction
// timestamp, the same clock that stamps updated_at on every mutation. A
// mutation racing exactly at the boundary lands in either this sync round
// or the next, never in neither.
func (t *todoRepository) GetChangesSince(ctx context.Context, since *time.Time) (time.Time, []models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildChangesSinceQuery(ctx, since)
	if err != nil {
		log.Err(err).
			Str("func", "todoRepository.GetChangesSince").
			Msg("failed to build query")
		return time.Time{}, nil, err
	}

	tx, err := t.DB.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		log.Err(err).
			Str("func", "todoRepository.GetChangesSince").
			Msg("failed to begin transaction")
		return time.Time{}, nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var serverNow time.Time
	if nowErr := tx.QueryRowContext(ctx, selectServerNow).Scan(&serverNow); nowErr != nil {
		log.Err(nowErr).
			Str("func", "todoRepository.GetChangesSince").
			Msg("failed to read server clock")
		return time.Time{}, nil, fmt.Errorf("%w: %w", ErrExecutingQuery, nowErr)
	}

	rows, queryErr := tx.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "todoRepository.GetChangesSince").
			Msg("failed to execute query for getting changed todos")
		return time.Time{}, nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	changes := make([]models.Todo, 0, 50)

	for rows.Next() {
		var todo models.Todo

		if scanErr := scanTodo(rows, &todo); scanErr != nil {
			log.Err(scanErr).
				Str("func", "todoRepository.GetChangesSince").
				Msg("failed to scan todo row")
			return time.Time{}, nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		changes = append(changes, todo)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "todoRepository.GetChangesSince").
			Msg("error occurred during rows iteration")
		return time.Time{}, nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "todoRepository.GetChangesSince").
			Msg("failed to commit transaction")
		return time.Time{}, nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Debug().
		Str("func", "todoRepository.GetChangesSince").
		Int("changes_count", len(changes)).
		Time("server_now", serverNow).
		Msg("collected changed todos")

	return serverNow, changes, nil
}

// Update applies the non-nil fields of update to the record identified by
// clientID. The version bump and updated_at reset are part of the same
// UPDATE statement; the updated row is returned via RETURNING, so a
// concurrent mutation can never be half-observed.
func (t *todoRepository) Update(ctx context.Context, clientID string, update models.UpdateTodoRequest) (models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateQuery(ctx, clientID, update)
	if err != nil {
		log.Err(err).
			Str("func", "todoRepository.Update").
			Str("client_id", clientID).
			Msg("failed to build update query")
		return models.Todo{}, err
	}

	var todo models.Todo
	if queryRowErr := scanTodo(t.DB.QueryRowContext(ctx, query, args...), &todo); queryRowErr != nil {
		if errors.Is(queryRowErr, sql.ErrNoRows) {
			log.Warn().
				Str("func", "todoRepository.Update").
				Str("client_id", clientID).
				Msg("record not found")
			return models.Todo{}, fmt.Errorf("%w: %q", ErrTodoNotFound, clientID)
		}

		log.Err(queryRowErr).
			Str("func", "todoRepository.Update").
			Str("client_id", clientID).
			Bool("retryable", t.errorClassificator.Classify(queryRowErr) == Retryable).
			Msg("failed to execute update query")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrExecutingQuery, queryRowErr)
	}

	log.Info().
		Str("func", "todoRepository.Update").
		Str("client_id", clientID).
		Int64("version", todo.Version).
		Msg("successfully updated todo record")

	return todo, nil
}

// SoftDelete sets the tombstone flag on the record identified by clientID,
// bumping version and updated_at. The statement matches tombstoned records
// too, so a repeated delete succeeds and bumps the counter again.
func (t *todoRepository) SoftDelete(ctx context.Context, clientID string) (models.Todo, error) {
	log := logger.FromContext(ctx)

	var todo models.Todo
	if queryRowErr := scanTodo(t.DB.QueryRowContext(ctx, softDeleteTodo, clientID), &todo); queryRowErr != nil {
		if errors.Is(queryRowErr, sql.ErrNoRows) {
			log.Warn().
				Str("func", "todoRepository.SoftDelete").
				Str("client_id", clientID).
				Msg("record not found")
			return models.Todo{}, fmt.Errorf("%w: %q", ErrTodoNotFound, clientID)
		}

		log.Err(queryRowErr).
			Str("func", "todoRepository.SoftDelete").
			Str("client_id", clientID).
			Msg("failed to execute soft delete query")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrExecutingQuery, queryRowErr)
	}

	log.Info().
		Str("func", "todoRepository.SoftDelete").
		Str("client_id", clientID).
		Int64("version", todo.Version).
		Msg("successfully soft-deleted todo record")

	return todo, nil
}
