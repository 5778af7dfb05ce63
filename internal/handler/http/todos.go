package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"todosync/internal/logger"
	"todosync/internal/utils"
	"todosync/models"
)

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var createRequest models.CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&createRequest); err != nil {
		log.Err(err).Str("func", "*Handler.createTodo").Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	todo, err := h.services.TodoService.CreateTodo(r.Context(), createRequest)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createTodo").Msg("error creating todo")
		utils.WriteJSONError(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, todo, http.StatusCreated)
}

func (h *Handler) listActiveTodos(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	todos, err := h.services.TodoService.ListActive(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listActiveTodos").Msg("error listing active todos")
		utils.WriteJSONError(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, todos, http.StatusOK)
}

func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	clientID := chi.URLParam(r, "clientID")

	var updateRequest models.UpdateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
		log.Err(err).Str("func", "*Handler.updateTodo").Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	todo, err := h.services.TodoService.UpdateTodo(r.Context(), clientID, updateRequest)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateTodo").Str("client_id", clientID).Msg("error updating todo")
		utils.WriteJSONError(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, todo, http.StatusOK)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	clientID := chi.URLParam(r, "clientID")

	todo, err := h.services.TodoService.DeleteTodo(r.Context(), clientID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteTodo").Str("client_id", clientID).Msg("error deleting todo")
		utils.WriteJSONError(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.DeleteResponse{
		ClientID: todo.ClientID,
		Message:  "todo deleted",
		Deleted:  todo.Deleted,
	}, http.StatusOK)
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.VersionResponse{
		Status:  "ok",
		Version: h.version,
	}, http.StatusOK)
}
