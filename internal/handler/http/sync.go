package http

import (
	"net/http"

	"todosync/internal/logger"
	"todosync/internal/utils"
)

func (h *Handler) getChanges(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	rawSince := r.URL.Query().Get("since")

	syncResponse, err := h.services.TodoService.GetChangesSince(r.Context(), rawSince)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getChanges").Str("since", rawSince).Msg("error getting changed todos")
		utils.WriteJSONError(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, syncResponse, http.StatusOK)
}
