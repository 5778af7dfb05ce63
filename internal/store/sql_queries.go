// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"todosync/models"
)

// todoColumns is the canonical column order used by every SELECT and every
// RETURNING clause in this package. scanTodo relies on this order.
var todoColumns = []string{
	"id",
	"client_id",
	"title",
	"description",
	"completed",
	"deleted",
	"version",
	"created_at",
	"updated_at",
}

const (
	saveTodo = `
		INSERT INTO todos (
			client_id,
			title,
			description,
			completed
		) VALUES ($1, $2, $3, $4)
		RETURNING id, client_id, title, description, completed, deleted, version, created_at, updated_at;`

	softDeleteTodo = `
		UPDATE todos SET
			deleted    = true,
			version    = version + 1,
			updated_at = now()
		WHERE client_id = $1
		RETURNING id, client_id, title, description, completed, deleted, version, created_at, updated_at;`

	selectServerNow = `SELECT now();`
)

// psql is the shared squirrel builder configured for PostgreSQL ($N
// placeholders).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildSelectActiveQuery builds the "active snapshot" query: every record
// whose tombstone flag is unset, newest first.
func buildSelectActiveQuery(ctx context.Context) (string, []any, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	query, args, err := psql.
		Select(todoColumns...).
		From("todos").
		Where(sq.Eq{"deleted": false}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildChangesSinceQuery builds the incremental-sync query: every record —
// tombstones included — whose updated_at is strictly greater than since,
// ordered oldest change first. A nil since means no lower bound, so the
// full history is returned.
func buildChangesSinceQuery(ctx context.Context, since *time.Time) (string, []any, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	builder := psql.
		Select(todoColumns...).
		From("todos")

	if since != nil {
		builder = builder.Where(sq.Gt{"updated_at": *since})
	}

	query, args, err := builder.OrderBy("updated_at ASC").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateQuery builds a partial UPDATE for a single record. Only non-nil
// fields of update are included in the SET list; the version bump and the
// updated_at reset are always part of the same statement, so the
// read-modify-write of the version counter is atomic per row with no
// process-level locking.
func buildUpdateQuery(ctx context.Context, clientID string, update models.UpdateTodoRequest) (string, []any, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	builder := psql.Update("todos")

	if update.Title != nil {
		builder = builder.Set("title", strings.TrimSpace(*update.Title))
	}

	if update.Description != nil {
		builder = builder.Set("description", strings.TrimSpace(*update.Description))
	}

	if update.Completed != nil {
		builder = builder.Set("completed", *update.Completed)
	}

	if update.Deleted != nil {
		builder = builder.Set("deleted", *update.Deleted)
	}

	query, args, err := builder.
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"client_id": clientID}).
		Suffix("RETURNING " + strings.Join(todoColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
