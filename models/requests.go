// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateTodoRequest is the body of POST /todos. The client generates
// ClientID before first contact with the server, which makes offline
// creation possible.
type CreateTodoRequest struct {
	// ClientID is the client-generated identifier. Required.
	ClientID string `json:"client_id"`

	// Title is the todo text. Required; surrounding whitespace is trimmed.
	Title string `json:"title"`

	// Description is optional and defaults to an empty string.
	Description string `json:"description"`

	// Completed is optional and defaults to false.
	Completed bool `json:"completed"`
}

// UpdateTodoRequest is the body of PATCH /todos/{clientID}. Only non-nil
// fields are applied (partial update support); everything else is left
// untouched.
type UpdateTodoRequest struct {
	// ClientID mirrors the path parameter. The client key is immutable:
	// a value different from the one in the path is rejected.
	ClientID *string `json:"client_id,omitempty"`

	// Title replaces the record title. If nil, the field is not updated.
	Title *string `json:"title,omitempty"`

	// Description replaces the record description.
	// If nil, the field is not updated.
	Description *string `json:"description,omitempty"`

	// Completed replaces the completion flag.
	// If nil, the field is not updated.
	Completed *bool `json:"completed,omitempty"`

	// Deleted replaces the tombstone flag. Setting it to false restores a
	// previously soft-deleted record ("undelete").
	// If nil, the field is not updated.
	Deleted *bool `json:"deleted,omitempty"`
}

// Empty reports whether the update carries no fields to apply.
func (r UpdateTodoRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.Completed == nil && r.Deleted == nil
}
