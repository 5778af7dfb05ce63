// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todosync/models"
)

func strPtr(s string) *string { return &s }

func TestValidateCreateRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     models.CreateTodoRequest
		wantErr error
	}{
		{
			name: "valid",
			req:  models.CreateTodoRequest{ClientID: "a", Title: "x"},
		},
		{
			name:    "missing client id",
			req:     models.CreateTodoRequest{Title: "x"},
			wantErr: ErrValidationNoClientID,
		},
		{
			name:    "whitespace client id",
			req:     models.CreateTodoRequest{ClientID: "   ", Title: "x"},
			wantErr: ErrValidationNoClientID,
		},
		{
			name:    "missing title",
			req:     models.CreateTodoRequest{ClientID: "a"},
			wantErr: ErrValidationNoTitle,
		},
		{
			name:    "whitespace title",
			req:     models.CreateTodoRequest{ClientID: "a", Title: "  \t "},
			wantErr: ErrValidationNoTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCreateRequest(tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUpdateRequest(t *testing.T) {
	tests := []struct {
		name     string
		clientID string
		req      models.UpdateTodoRequest
		wantErr  error
	}{
		{
			name:     "valid partial update",
			clientID: "a",
			req:      models.UpdateTodoRequest{Title: strPtr("new")},
		},
		{
			name:     "empty update is allowed",
			clientID: "a",
			req:      models.UpdateTodoRequest{},
		},
		{
			name:    "missing client id",
			req:     models.UpdateTodoRequest{Title: strPtr("new")},
			wantErr: ErrValidationNoClientID,
		},
		{
			name:     "changing client id is forbidden",
			clientID: "a",
			req:      models.UpdateTodoRequest{ClientID: strPtr("b")},
			wantErr:  ErrClientIDImmutable,
		},
		{
			name:     "same client id in body is not a modification",
			clientID: "a",
			req:      models.UpdateTodoRequest{ClientID: strPtr("a")},
		},
		{
			name:     "title cannot become empty",
			clientID: "a",
			req:      models.UpdateTodoRequest{Title: strPtr("   ")},
			wantErr:  ErrValidationNoTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateUpdateRequest(tt.clientID, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseSince(t *testing.T) {
	t.Run("empty means no lower bound", func(t *testing.T) {
		assert.Nil(t, parseSince(""))
	})

	t.Run("unparsable means no lower bound", func(t *testing.T) {
		assert.Nil(t, parseSince("not-a-timestamp"))
		assert.Nil(t, parseSince("2026-03-01"))
	})

	t.Run("valid RFC3339", func(t *testing.T) {
		got := parseSince("2026-03-01T12:00:00Z")
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), got.UTC())
	})

	t.Run("valid RFC3339 with offset", func(t *testing.T) {
		got := parseSince("2026-03-01T12:00:00+03:00")
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), got.UTC())
	})
}
