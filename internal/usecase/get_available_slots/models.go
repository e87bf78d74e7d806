package get_available_slots

import (
	"time"

	"github.com/hairmatch/HM-ReserveService/pkg/types"
)

// Request is the slot listing request.
type Request struct {
	HairdresserID int64     // hairdresser to book with
	ServiceID     int64     // requested service, defines the slot duration
	Date          time.Time // calendar date to list slots for (no time part)
}

// Response carries the ordered list of bookable start times.
type Response struct {
	HairdresserID int64
	ServiceID     int64
	Date          time.Time
	Slots         []types.TimeString
}
