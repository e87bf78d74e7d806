package reserve

import "errors"

var (
	// ErrReserveNotFound is returned when the reserve does not exist
	ErrReserveNotFound = errors.New("reserve.repository: reserve not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("reserve.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("reserve.repository: failed to execute query")

	// ErrScanRow is returned when scanning the query result fails
	ErrScanRow = errors.New("reserve.repository: failed to scan row")
)
