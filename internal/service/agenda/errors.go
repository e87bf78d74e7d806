package agenda

import "errors"

var (
	// ErrEntryNotFound is returned when the agenda entry does not exist
	ErrEntryNotFound = errors.New("agenda entry not found")

	// ErrHairdresserNotFound is returned when the hairdresser does not exist
	ErrHairdresserNotFound = errors.New("hairdresser not found")

	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected service failures
	ErrInternal = errors.New("service: internal error")
)
