package http

import (
	"errors"
	"net/http"

	"todosync/internal/service"
	"todosync/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrValidationNoClientID: http.StatusBadRequest,
	service.ErrValidationNoTitle:    http.StatusBadRequest,
	service.ErrClientIDImmutable:    http.StatusBadRequest,

	store.ErrClientIDExists: http.StatusConflict,
	store.ErrTodoNotFound:   http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-facing error message. Storage-level
// failures are collapsed to a generic message so that SQL details never
// leak into a response body.
func messageFromError(err error) string {
	if statusFromError(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}
