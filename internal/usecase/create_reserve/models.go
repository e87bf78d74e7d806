package create_reserve

import "time"

// Request is the booking request.
type Request struct {
	CustomerID    int64
	HairdresserID int64
	ServiceID     int64
	StartTime     time.Time // requested start instant
}

// Response is the created reserve.
type Response struct {
	ID              int64
	CustomerID      int64
	HairdresserID   int64
	ServiceID       int64
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int

	// Denormalized data
	ServiceName  string
	ServicePrice float64

	CreatedAt time.Time
}
