package models

import (
	"time"

	"github.com/hairmatch/HM-ReserveService/internal/domain"
)

// ReserveResponse is the wire representation of a reserve.
type ReserveResponse struct {
	ID              int64   `json:"id"`
	CustomerID      int64   `json:"customer"`
	HairdresserID   int64   `json:"hairdresser"`
	ServiceID       int64   `json:"service"`
	StartTime       string  `json:"start_time"` // RFC 3339
	EndTime         string  `json:"end_time"`   // RFC 3339
	DurationMinutes int     `json:"duration_minutes"`
	ServiceName     string  `json:"service_name"`
	ServicePrice    float64 `json:"service_price"`
	CreatedAt       string  `json:"created_at"`
}

// ReserveListResponse is a list of reserves.
type ReserveListResponse struct {
	Reserves []ReserveResponse `json:"reserves"`
}

// FromDomainReserve converts a domain reserve to its wire form.
func FromDomainReserve(r *domain.Reserve) *ReserveResponse {
	return &ReserveResponse{
		ID:              r.ID,
		CustomerID:      r.CustomerID,
		HairdresserID:   r.HairdresserID,
		ServiceID:       r.ServiceID,
		StartTime:       r.StartTime.Format(time.RFC3339),
		EndTime:         r.EndTime().Format(time.RFC3339),
		DurationMinutes: r.DurationMinutes,
		ServiceName:     r.ServiceName,
		ServicePrice:    r.ServicePrice,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainReserveList converts a list of domain reserves.
func FromDomainReserveList(list []*domain.Reserve) *ReserveListResponse {
	reserves := make([]ReserveResponse, len(list))
	for i, r := range list {
		reserves[i] = *FromDomainReserve(r)
	}
	return &ReserveListResponse{Reserves: reserves}
}
