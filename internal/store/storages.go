package store

import (
	"context"

	"todosync/internal/config"
	"todosync/internal/logger"
)

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	TodoRepository TodoRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations, and wires
// up all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		TodoRepository: NewTodoRepository(db, log),
	}, nil
}
