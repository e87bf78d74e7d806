package get_available_slots

import "errors"

var (
	// ErrHairdresserNotFound is returned when the hairdresser does not exist
	ErrHairdresserNotFound = errors.New("get_available_slots: hairdresser not found")

	// ErrServiceNotFound is returned when the service does not exist
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal is returned on unexpected use case failures
	ErrInternal = errors.New("get_available_slots: internal error")
)
