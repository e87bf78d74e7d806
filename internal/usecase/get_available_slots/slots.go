package get_available_slots

import (
	"sort"
	"time"

	"github.com/hairmatch/HM-ReserveService/internal/domain"
	"github.com/hairmatch/HM-ReserveService/pkg/types"
)

// interval is a half-open time range [start, end).
type interval struct {
	start time.Time
	end   time.Time
}

// overlaps reports whether [start, end) intersects the interval.
// Touching edges are not an overlap.
func (iv interval) overlaps(start, end time.Time) bool {
	return start.Before(iv.end) && end.After(iv.start)
}

// buildBlockingIntervals merges the committed appointments and the
// optional break into one list sorted by start time.
func buildBlockingIntervals(date time.Time, working *domain.Availability, entries []*domain.AgendaEntry) ([]interval, error) {
	blocking := make([]interval, 0, len(entries)+1)

	for _, entry := range entries {
		blocking = append(blocking, interval{start: entry.StartTime, end: entry.EndTime})
	}

	if working.HasBreak() {
		breakStart, err := working.BreakStart.At(date)
		if err != nil {
			return nil, err
		}
		breakEnd, err := working.BreakEnd.At(date)
		if err != nil {
			return nil, err
		}
		blocking = append(blocking, interval{start: breakStart, end: breakEnd})
	}

	sort.Slice(blocking, func(i, j int) bool {
		return blocking[i].start.Before(blocking[j].start)
	})

	return blocking, nil
}

// generateSlots walks candidate start times across the working window
// and keeps the ones whose occupied interval [c, c+duration) touches no
// blocking interval.
//
// Candidates step by the slot granularity, but a rejected candidate
// jumps directly to the end of the interval that blocked it and the
// walk continues from there without re-aligning to the original grid.
// A slot right after an appointment may therefore start off-grid; the
// exact slot lists in the tests depend on this behavior.
//
// now cuts off candidates already in the past; pass the zero time when
// the date is not today.
func generateSlots(
	date time.Time,
	working *domain.Availability,
	blocking []interval,
	durationMinutes int,
	granularityMinutes int,
	now time.Time,
) ([]types.TimeString, error) {
	windowStart, err := working.StartTime.At(date)
	if err != nil {
		return nil, err
	}
	windowEnd, err := working.EndTime.At(date)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(granularityMinutes) * time.Minute

	// Last admissible start: the service must finish by closing time.
	lastStart := windowEnd.Add(-duration)
	if lastStart.Before(windowStart) {
		// Service too long to ever fit into the working window.
		return []types.TimeString{}, nil
	}

	slots := make([]types.TimeString, 0)

	c := windowStart
	for !c.After(lastStart) {
		if !now.IsZero() && c.Before(now) {
			c = c.Add(step)
			continue
		}

		if blocked, ok := findBlocking(c, c.Add(duration), blocking); ok {
			// Jump past the blocking interval instead of stepping
			// granule by granule.
			c = blocked.end
			continue
		}

		slots = append(slots, types.NewTimeString(c))
		c = c.Add(step)
	}

	return slots, nil
}

// findBlocking returns the first blocking interval that overlaps the
// candidate's occupied interval [start, end).
func findBlocking(start, end time.Time, blocking []interval) (interval, bool) {
	for _, iv := range blocking {
		if iv.overlaps(start, end) {
			return iv, true
		}
	}
	return interval{}, false
}
