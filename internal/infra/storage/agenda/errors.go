package agenda

import "errors"

var (
	// ErrEntryNotFound is returned when the agenda entry does not exist
	ErrEntryNotFound = errors.New("agenda.repository: entry not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("agenda.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("agenda.repository: failed to execute query")

	// ErrScanRow is returned when scanning the query result fails
	ErrScanRow = errors.New("agenda.repository: failed to scan row")
)
