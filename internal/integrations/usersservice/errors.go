package usersservice

import "errors"

var (
	// ErrCustomerNotFound is returned when the customer does not exist
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrHairdresserNotFound is returned when the hairdresser does not exist
	ErrHairdresserNotFound = errors.New("hairdresser not found")

	// ErrInternal is returned on client-side failures
	ErrInternal = errors.New("usersservice client: internal error")

	// ErrInvalidResponse is returned on unexpected responses from the service
	ErrInvalidResponse = errors.New("usersservice client: invalid response")
)
