package create_reserve

import (
	"time"

	createReserve "github.com/hairmatch/HM-ReserveService/internal/usecase/create_reserve"
)

// CreateReserveRequest is the request body of the booking endpoint.
type CreateReserveRequest struct {
	CustomerID    int64  `json:"customer"`
	HairdresserID int64  `json:"hairdresser"`
	ServiceID     int64  `json:"service"`
	StartTime     string `json:"start_time"` // ISO 8601
}

// ToUseCaseRequest builds the use case request, parsing the start time.
func (r *CreateReserveRequest) ToUseCaseRequest() (*createReserve.Request, error) {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createReserve.Request{
		CustomerID:    r.CustomerID,
		HairdresserID: r.HairdresserID,
		ServiceID:     r.ServiceID,
		StartTime:     start,
	}, nil
}
