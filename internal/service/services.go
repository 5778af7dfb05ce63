package service

import (
	"todosync/internal/logger"
	"todosync/internal/store"
)

type Services struct {
	TodoService TodoService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		TodoService: NewTodoService(storages.TodoRepository, logger),
	}
}
