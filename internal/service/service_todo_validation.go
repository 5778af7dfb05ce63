// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"
	"time"

	"todosync/models"
)

// validateCreateRequest checks that the required fields of a create request
// are present after whitespace trimming.
func validateCreateRequest(req models.CreateTodoRequest) error {
	if strings.TrimSpace(req.ClientID) == "" {
		return ErrValidationNoClientID
	}

	if strings.TrimSpace(req.Title) == "" {
		return ErrValidationNoTitle
	}

	return nil
}

// validateUpdateRequest enforces the update invariants:
//   - the path must carry a client id;
//   - the client id is immutable — a body value that differs from the path
//     is rejected (an identical value is not a modification and is ignored);
//   - a title, when present, must stay non-empty after trimming.
func validateUpdateRequest(clientID string, req models.UpdateTodoRequest) error {
	if strings.TrimSpace(clientID) == "" {
		return ErrValidationNoClientID
	}

	if req.ClientID != nil && *req.ClientID != clientID {
		return ErrClientIDImmutable
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return ErrValidationNoTitle
	}

	return nil
}

// parseSince parses the raw `since` query value as RFC 3339. A nil result
// means "no lower bound" — either the value was absent or it did not parse.
func parseSince(rawSince string) *time.Time {
	if rawSince == "" {
		return nil
	}

	since, err := time.Parse(time.RFC3339, rawSince)
	if err != nil {
		return nil
	}

	return &since
}
