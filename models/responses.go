package models

import "time"

// SyncResponse is the body of GET /todos/sync. The client stores Timestamp
// and passes it back as the `since` parameter of its next sync call.
type SyncResponse struct {
	// Timestamp is the server clock captured when the sync query executed.
	// It is read from the same clock domain that assigns UpdatedAt, so a
	// follow-up call with this value never misses a mutation committed
	// after the query and never re-delivers the changes already returned.
	Timestamp time.Time `json:"timestamp"`

	// Changes lists every record (tombstones included) mutated strictly
	// after the client's `since` value, ordered by UpdatedAt ascending so
	// that a client applying them in order reconstructs a consistent
	// state even with partial delivery.
	Changes []Todo `json:"changes"`
}

// DeleteResponse is the body of DELETE /todos/{clientID}.
type DeleteResponse struct {
	ClientID string `json:"client_id"`
	Message  string `json:"message"`
	Deleted  bool   `json:"deleted"`
}

// ErrorResponse is the uniform error body for every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}

// VersionResponse is the body of GET /healthz.
type VersionResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
