package catalogservice

import "errors"

var (
	// ErrServiceNotFound is returned when the catalog has no such service
	ErrServiceNotFound = errors.New("service not found")

	// ErrInternal is returned on client-side failures
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse is returned on unexpected responses from the service
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")
)
