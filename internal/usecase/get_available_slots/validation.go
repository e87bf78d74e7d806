package get_available_slots

import (
	"fmt"
	"time"
)

// validateRequest validates the slot listing request.
func validateRequest(req *Request) error {
	if req.HairdresserID <= 0 {
		return fmt.Errorf("%w: hairdresserID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// isSameDay reports whether two instants fall on the same calendar day.
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
