package domain

import "time"

// Reserve represents a customer-facing reservation in the system.
// Created only together with its AgendaEntry inside the booking transaction.
type Reserve struct {
	ID              int64
	CustomerID      int64
	HairdresserID   int64
	ServiceID       int64
	StartTime       time.Time
	DurationMinutes int

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64

	CreatedAt time.Time
}

// EndTime returns the instant the reserved service ends.
func (r *Reserve) EndTime() time.Time {
	return r.StartTime.Add(time.Duration(r.DurationMinutes) * time.Minute)
}

// Overlaps reports whether the reserve intersects the half-open
// interval [start, end). Touching edges do not count as overlap.
func (r *Reserve) Overlaps(start, end time.Time) bool {
	return r.StartTime.Before(end) && r.EndTime().After(start)
}
