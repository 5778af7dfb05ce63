package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"todosync/internal/service"
	"todosync/internal/store"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "missing client id",
			err:  service.ErrValidationNoClientID,
			want: http.StatusBadRequest,
		},
		{
			name: "client id change attempt",
			err:  service.ErrClientIDImmutable,
			want: http.StatusBadRequest,
		},
		{
			name: "duplicate client id",
			err:  store.ErrClientIDExists,
			want: http.StatusConflict,
		},
		{
			name: "wrapped duplicate client id",
			err:  fmt.Errorf("%w: %q", store.ErrClientIDExists, "client-a"),
			want: http.StatusConflict,
		},
		{
			name: "todo not found",
			err:  store.ErrTodoNotFound,
			want: http.StatusNotFound,
		},
		{
			name: "query failure",
			err:  store.ErrExecutingQuery,
			want: http.StatusInternalServerError,
		},
		{
			name: "wrapped query failure keeps status",
			err:  fmt.Errorf("%w: %w", store.ErrExecutingQuery, errors.New("connection reset")),
			want: http.StatusInternalServerError,
		},
		{
			name: "unknown error",
			err:  errors.New("something unexpected"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestMessageFromError(t *testing.T) {
	t.Run("client errors keep their message", func(t *testing.T) {
		err := fmt.Errorf("%w: %q", store.ErrTodoNotFound, "ghost")
		assert.Equal(t, err.Error(), messageFromError(err))
	})

	t.Run("server errors are collapsed", func(t *testing.T) {
		err := fmt.Errorf("%w: %w", store.ErrExecutingQuery, errors.New("pq: relation does not exist"))
		assert.Equal(t, "internal server error", messageFromError(err))
	})
}
