package models

import (
	"time"

	"github.com/hairmatch/HM-ReserveService/internal/domain"
)

// AgendaEntryResponse is the wire representation of a ledger entry.
type AgendaEntryResponse struct {
	ID              int64  `json:"id"`
	ReserveID       int64  `json:"reserve"`
	HairdresserID   int64  `json:"hairdresser"`
	ServiceID       int64  `json:"service"`
	StartTime       string `json:"start_time"` // RFC 3339
	EndTime         string `json:"end_time"`   // RFC 3339
	ServiceName     string `json:"service_name"`
	DurationMinutes int    `json:"duration_minutes"`
	CreatedAt       string `json:"created_at"`
}

// AgendaListResponse is a list of ledger entries.
type AgendaListResponse struct {
	Agenda []AgendaEntryResponse `json:"agenda"`
}

// FromDomainEntry converts a domain ledger entry to its wire form.
func FromDomainEntry(e *domain.AgendaEntry) *AgendaEntryResponse {
	return &AgendaEntryResponse{
		ID:              e.ID,
		ReserveID:       e.ReserveID,
		HairdresserID:   e.HairdresserID,
		ServiceID:       e.ServiceID,
		StartTime:       e.StartTime.Format(time.RFC3339),
		EndTime:         e.EndTime.Format(time.RFC3339),
		ServiceName:     e.ServiceName,
		DurationMinutes: e.DurationMinutes,
		CreatedAt:       e.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainEntryList converts a list of domain ledger entries.
func FromDomainEntryList(list []*domain.AgendaEntry) *AgendaListResponse {
	entries := make([]AgendaEntryResponse, len(list))
	for i, e := range list {
		entries[i] = *FromDomainEntry(e)
	}
	return &AgendaListResponse{Agenda: entries}
}
