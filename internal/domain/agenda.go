package domain

import "time"

// AgendaEntry is a committed appointment in the hairdresser's ledger.
// It is the authoritative record used for conflict detection: a candidate
// slot is unavailable when it overlaps any agenda entry.
// Immutable once created except for deletion.
type AgendaEntry struct {
	ID            int64
	ReserveID     int64
	HairdresserID int64
	ServiceID     int64
	StartTime     time.Time
	EndTime       time.Time

	// Denormalized data for history
	ServiceName     string
	DurationMinutes int

	CreatedAt time.Time
}

// Overlaps reports whether the entry intersects the half-open
// interval [start, end). Touching edges do not count as overlap.
func (a *AgendaEntry) Overlaps(start, end time.Time) bool {
	return a.StartTime.Before(end) && a.EndTime.After(start)
}
