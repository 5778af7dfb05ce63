// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Todo is the synchronized todo record.
//
// Every record carries the metadata offline clients need to reconcile
// state: a client-generated identifier, a tombstone flag, a per-record
// version counter, and server-assigned timestamps. Records are never
// physically removed; deletion only sets the tombstone so that clients
// which were offline at the time learn about it during their next sync.
type Todo struct {
	// ID is the server-internal storage key (bigserial primary key).
	// It is never exposed to clients.
	ID int64 `json:"-"`

	// ClientID is the client-generated identifier used in every
	// client-facing operation. Unique across all records, including
	// tombstoned ones, and immutable once set.
	ClientID string `json:"client_id"`

	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`

	// Deleted marks the record as a tombstone. A deleted record stays in
	// the store forever; an update may explicitly set Deleted back to
	// false, which counts as a regular mutation.
	Deleted bool `json:"deleted"`

	// Version starts at 1 on creation and increases by exactly 1 on every
	// accepted mutation (update or soft-delete). Reads never change it.
	Version int64 `json:"version"`

	// CreatedAt is assigned once from the database clock.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt equals CreatedAt right after creation and is reset from
	// the database clock on every accepted mutation.
	UpdatedAt time.Time `json:"updated_at"`
}
