package availability

import "errors"

var (
	// ErrAvailabilityNotFound is returned when no availability row matches the lookup
	ErrAvailabilityNotFound = errors.New("availability.repository: availability not found")

	// ErrDuplicateWeekday is returned when a second row is created for the same (hairdresser, weekday)
	ErrDuplicateWeekday = errors.New("availability.repository: availability already exists for this weekday")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow is returned when scanning the query result fails
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)
