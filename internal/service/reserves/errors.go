package reserves

import "errors"

var (
	// ErrReserveNotFound is returned when the reserve does not exist
	ErrReserveNotFound = errors.New("reserve not found")

	// ErrCustomerNotFound is returned when the customer does not exist
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected service failures
	ErrInternal = errors.New("service: internal error")
)
