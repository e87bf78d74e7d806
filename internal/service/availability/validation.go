package availability

import (
	"fmt"

	"github.com/hairmatch/HM-ReserveService/internal/domain"
)

// validateWorkingHours enforces the working-hours invariants:
// start < end, and a break - when present - must be a proper interval
// fully inside the working window. A half-specified break is invalid.
func validateWorkingHours(av *domain.Availability) error {
	if !av.StartTime.IsBefore(av.EndTime) {
		return fmt.Errorf("%w: start_time must be before end_time", ErrInvalidInput)
	}

	if (av.BreakStart == nil) != (av.BreakEnd == nil) {
		return fmt.Errorf("%w: break_start and break_end must be set together", ErrInvalidInput)
	}

	if av.HasBreak() {
		if !av.BreakStart.IsBefore(*av.BreakEnd) {
			return fmt.Errorf("%w: break_start must be before break_end", ErrInvalidInput)
		}
		if av.BreakStart.IsBefore(av.StartTime) || av.BreakEnd.IsAfter(av.EndTime) {
			return fmt.Errorf("%w: break must be inside the working window", ErrInvalidInput)
		}
	}

	return nil
}
