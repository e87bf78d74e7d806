package create_reserve

import "errors"

var (
	// ErrCustomerNotFound is returned when the customer does not exist
	ErrCustomerNotFound = errors.New("create_reserve: customer not found")

	// ErrHairdresserNotFound is returned when the hairdresser does not exist
	ErrHairdresserNotFound = errors.New("create_reserve: hairdresser not found")

	// ErrServiceNotFound is returned when the service does not exist
	ErrServiceNotFound = errors.New("create_reserve: service not found")

	// ErrSlotTaken is returned when the requested interval overlaps an
	// existing appointment of the hairdresser
	ErrSlotTaken = errors.New("create_reserve: time slot is already booked")

	// ErrCustomerDoubleBooked is returned when the requested interval
	// overlaps another reserve of the same customer, regardless of
	// hairdresser
	ErrCustomerDoubleBooked = errors.New("create_reserve: customer already has a reserve at this time")

	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("create_reserve: invalid input data")

	// ErrInternal is returned on unexpected use case failures
	ErrInternal = errors.New("create_reserve: internal error")
)
