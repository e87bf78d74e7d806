package get_available_slots

import (
	"time"

	"github.com/hairmatch/HM-ReserveService/internal/domain"
	getAvailableSlots "github.com/hairmatch/HM-ReserveService/internal/usecase/get_available_slots"
)

// SlotsRequest is the request body of the slot listing endpoint.
type SlotsRequest struct {
	ServiceID int64  `json:"service"`
	Date      string `json:"date"` // YYYY-MM-DD
}

// SlotsResponse is the frozen wire shape of the slot listing.
type SlotsResponse struct {
	AvailableSlots []string `json:"available_slots"`
}

// ToUseCaseRequest builds the use case request, parsing the date.
func (r *SlotsRequest) ToUseCaseRequest(hairdresserID int64) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		HairdresserID: hairdresserID,
		ServiceID:     r.ServiceID,
		Date:          date,
	}, nil
}

// FromUseCaseResponse converts the use case response to the wire shape.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}
	return &SlotsResponse{AvailableSlots: slots}
}
