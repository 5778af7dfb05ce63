package service

import (
	"context"
	"strings"

	"todosync/internal/logger"
	"todosync/internal/store"
	"todosync/models"
)

type todoService struct {
	todoRepository store.TodoRepository

	logger *logger.Logger
}

// NewTodoService constructs a TodoService backed by the given repository.
func NewTodoService(todoRepository store.TodoRepository, logger *logger.Logger) TodoService {
	return &todoService{
		todoRepository: todoRepository,
		logger:         logger,
	}
}

func (s *todoService) CreateTodo(ctx context.Context, req models.CreateTodoRequest) (models.Todo, error) {
	log := logger.FromContext(ctx)

	if err := validateCreateRequest(req); err != nil {
		log.Warn().
			Str("func", "todoService.CreateTodo").
			Str("client_id", req.ClientID).
			Err(err).
			Msg("create request failed validation")
		return models.Todo{}, err
	}

	todo := models.Todo{
		ClientID:    strings.TrimSpace(req.ClientID),
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Completed:   req.Completed,
	}

	if err := s.todoRepository.Save(ctx, &todo); err != nil {
		return models.Todo{}, err
	}

	return todo, nil
}

func (s *todoService) ListActive(ctx context.Context) ([]models.Todo, error) {
	return s.todoRepository.GetActive(ctx)
}

func (s *todoService) GetChangesSince(ctx context.Context, rawSince string) (models.SyncResponse, error) {
	log := logger.FromContext(ctx)

	// An absent or unparsable value falls back to "no lower bound": the
	// full history is returned and the client starts a fresh sync cycle.
	since := parseSince(rawSince)
	if since == nil && rawSince != "" {
		log.Warn().
			Str("func", "todoService.GetChangesSince").
			Str("since", rawSince).
			Msg("unparsable since value, returning full history")
	}

	serverNow, changes, err := s.todoRepository.GetChangesSince(ctx, since)
	if err != nil {
		return models.SyncResponse{}, err
	}

	return models.SyncResponse{
		Timestamp: serverNow,
		Changes:   changes,
	}, nil
}

func (s *todoService) UpdateTodo(ctx context.Context, clientID string, req models.UpdateTodoRequest) (models.Todo, error) {
	log := logger.FromContext(ctx)

	if err := validateUpdateRequest(clientID, req); err != nil {
		log.Warn().
			Str("func", "todoService.UpdateTodo").
			Str("client_id", clientID).
			Err(err).
			Msg("update request failed validation")
		return models.Todo{}, err
	}

	return s.todoRepository.Update(ctx, clientID, req)
}

func (s *todoService) DeleteTodo(ctx context.Context, clientID string) (models.Todo, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(clientID) == "" {
		log.Warn().
			Str("func", "todoService.DeleteTodo").
			Msg("delete request without client id")
		return models.Todo{}, ErrValidationNoClientID
	}

	return s.todoRepository.SoftDelete(ctx, clientID)
}
