package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/hairmatch/HM-ReserveService/internal/domain"
	"github.com/hairmatch/HM-ReserveService/pkg/types"
)

var (
	// ErrInvalidWeekday is returned on an unknown weekday name
	ErrInvalidWeekday = errors.New("invalid weekday name")

	// ErrInvalidTime is returned on a malformed HH:MM value
	ErrInvalidTime = errors.New("invalid time format, expected HH:MM")
)

// Request models

// CreateRequest is one working-hours row to create.
type CreateRequest struct {
	HairdresserID int64   `json:"hairdresser"`
	Weekday       string  `json:"weekday"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	BreakStart    *string `json:"break_start,omitempty"`
	BreakEnd      *string `json:"break_end,omitempty"`
}

// ToDomain parses and converts the request into a domain row.
func (r *CreateRequest) ToDomain() (*domain.Availability, error) {
	weekday, err := domain.ParseWeekday(r.Weekday)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidWeekday, r.Weekday)
	}

	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: start_time %q", ErrInvalidTime, r.StartTime)
	}

	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: end_time %q", ErrInvalidTime, r.EndTime)
	}

	av := &domain.Availability{
		HairdresserID: r.HairdresserID,
		Weekday:       weekday,
		StartTime:     start,
		EndTime:       end,
	}

	if r.BreakStart != nil {
		bs, err := types.NewTimeStringFromString(*r.BreakStart)
		if err != nil {
			return nil, fmt.Errorf("%w: break_start %q", ErrInvalidTime, *r.BreakStart)
		}
		av.BreakStart = &bs
	}
	if r.BreakEnd != nil {
		be, err := types.NewTimeStringFromString(*r.BreakEnd)
		if err != nil {
			return nil, fmt.Errorf("%w: break_end %q", ErrInvalidTime, *r.BreakEnd)
		}
		av.BreakEnd = &be
	}

	return av, nil
}

// UpdateRequest is a partial update of a working-hours row.
// Absent fields stay unchanged.
type UpdateRequest struct {
	Weekday    *string `json:"weekday,omitempty"`
	StartTime  *string `json:"start_time,omitempty"`
	EndTime    *string `json:"end_time,omitempty"`
	BreakStart *string `json:"break_start,omitempty"`
	BreakEnd   *string `json:"break_end,omitempty"`
}

// ToDomainPatch parses and converts the request into a domain patch.
func (r *UpdateRequest) ToDomainPatch() (domain.AvailabilityPatch, error) {
	var patch domain.AvailabilityPatch

	if r.Weekday != nil {
		weekday, err := domain.ParseWeekday(*r.Weekday)
		if err != nil {
			return patch, fmt.Errorf("%w: %q", ErrInvalidWeekday, *r.Weekday)
		}
		patch.Weekday = &weekday
	}

	if r.StartTime != nil {
		start, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return patch, fmt.Errorf("%w: start_time %q", ErrInvalidTime, *r.StartTime)
		}
		patch.StartTime = &start
	}

	if r.EndTime != nil {
		end, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return patch, fmt.Errorf("%w: end_time %q", ErrInvalidTime, *r.EndTime)
		}
		patch.EndTime = &end
	}

	if r.BreakStart != nil {
		bs, err := types.NewTimeStringFromString(*r.BreakStart)
		if err != nil {
			return patch, fmt.Errorf("%w: break_start %q", ErrInvalidTime, *r.BreakStart)
		}
		patch.BreakStart = &bs
	}

	if r.BreakEnd != nil {
		be, err := types.NewTimeStringFromString(*r.BreakEnd)
		if err != nil {
			return patch, fmt.Errorf("%w: break_end %q", ErrInvalidTime, *r.BreakEnd)
		}
		patch.BreakEnd = &be
	}

	return patch, nil
}

// Response models

// AvailabilityResponse is the wire representation of one row.
type AvailabilityResponse struct {
	ID            int64   `json:"id"`
	HairdresserID int64   `json:"hairdresser"`
	Weekday       string  `json:"weekday"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	BreakStart    *string `json:"break_start,omitempty"`
	BreakEnd      *string `json:"break_end,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// ScheduleResponse is the weekly schedule of a hairdresser: the
// configured rows ordered Sunday first plus the numbers of the
// unconfigured weekdays (0 = Sunday).
type ScheduleResponse struct {
	Availability   []AvailabilityResponse `json:"availability"`
	NonWorkingDays []int                  `json:"non_working_days"`
}

// FromDomainAvailability converts a domain row to its wire form.
func FromDomainAvailability(av *domain.Availability) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		ID:            av.ID,
		HairdresserID: av.HairdresserID,
		Weekday:       string(av.Weekday),
		StartTime:     av.StartTime.String(),
		EndTime:       av.EndTime.String(),
		CreatedAt:     av.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     av.UpdatedAt.Format(time.RFC3339),
	}

	if av.BreakStart != nil {
		bs := av.BreakStart.String()
		resp.BreakStart = &bs
	}
	if av.BreakEnd != nil {
		be := av.BreakEnd.String()
		resp.BreakEnd = &be
	}

	return resp
}

// FromDomainSchedule converts a hairdresser's configured rows into the
// schedule response, computing the non-working weekday numbers.
func FromDomainSchedule(list []*domain.Availability) *ScheduleResponse {
	configured := make(map[domain.Weekday]bool, len(list))
	rows := make([]AvailabilityResponse, len(list))
	for i, av := range list {
		rows[i] = *FromDomainAvailability(av)
		configured[av.Weekday] = true
	}

	nonWorking := make([]int, 0, domain.WeekdaysPerSchedule-len(list))
	for _, weekday := range domain.AllWeekdays {
		if !configured[weekday] {
			nonWorking = append(nonWorking, weekday.Number())
		}
	}

	return &ScheduleResponse{
		Availability:   rows,
		NonWorkingDays: nonWorking,
	}
}
