package availability

import "errors"

var (
	// ErrAvailabilityNotFound is returned when the availability row does not exist
	ErrAvailabilityNotFound = errors.New("availability not found")

	// ErrHairdresserNotFound is returned when the hairdresser does not exist
	ErrHairdresserNotFound = errors.New("hairdresser not found")

	// ErrDuplicateWeekday is returned when the hairdresser already has
	// working hours for the weekday
	ErrDuplicateWeekday = errors.New("availability already exists for this weekday")

	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected service failures
	ErrInternal = errors.New("service: internal error")
)
