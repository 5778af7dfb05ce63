package service

import "errors"

var (
	ErrValidationNoClientID = errors.New("client id is required")
	ErrValidationNoTitle    = errors.New("title is required")

	// ErrClientIDImmutable is returned when an update tries to change the
	// client-generated identifier of an existing record.
	ErrClientIDImmutable = errors.New("client id cannot be changed")
)
