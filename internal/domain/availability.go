package domain

import (
	"fmt"
	"time"

	"github.com/hairmatch/HM-ReserveService/pkg/types"
)

// Weekday is a lowercase weekday name as stored in the availability table.
type Weekday string

const (
	Sunday    Weekday = "sunday"
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
)

// AllWeekdays lists the weekdays in calendar order, Sunday first.
// The numeric position of a weekday in this slice is its wire number
// (0 = Sunday) used by the non_working_days listing.
var AllWeekdays = []Weekday{
	Sunday,
	Monday,
	Tuesday,
	Wednesday,
	Thursday,
	Friday,
	Saturday,
}

// ParseWeekday validates a weekday name from client input.
func ParseWeekday(s string) (Weekday, error) {
	for _, w := range AllWeekdays {
		if string(w) == s {
			return w, nil
		}
	}
	return "", fmt.Errorf("invalid weekday name: %q", s)
}

// WeekdayFromTime maps a calendar date to its weekday name.
func WeekdayFromTime(t time.Time) Weekday {
	return AllWeekdays[int(t.Weekday())]
}

// Number returns the wire number of the weekday (0 = Sunday).
func (w Weekday) Number() int {
	for i, day := range AllWeekdays {
		if day == w {
			return i
		}
	}
	return -1
}

// Availability is one weekly working-hours row for a hairdresser:
// the working window for a weekday plus an optional break inside it.
// At most one row exists per (hairdresser, weekday).
type Availability struct {
	ID            int64
	HairdresserID int64
	Weekday       Weekday
	StartTime     types.TimeString
	EndTime       types.TimeString
	BreakStart    *types.TimeString
	BreakEnd      *types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasBreak reports whether the row carries a break interval.
func (a *Availability) HasBreak() bool {
	return a.BreakStart != nil && a.BreakEnd != nil
}

// AvailabilityPatch is a partial update of an availability row.
// Only non-nil fields are applied.
type AvailabilityPatch struct {
	Weekday    *Weekday
	StartTime  *types.TimeString
	EndTime    *types.TimeString
	BreakStart *types.TimeString
	BreakEnd   *types.TimeString
}

// IsEmpty reports whether the patch changes nothing.
func (p *AvailabilityPatch) IsEmpty() bool {
	return p.Weekday == nil &&
		p.StartTime == nil &&
		p.EndTime == nil &&
		p.BreakStart == nil &&
		p.BreakEnd == nil
}
