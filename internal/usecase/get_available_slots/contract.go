package get_available_slots

import (
	"context"
	"time"

	"github.com/hairmatch/HM-ReserveService/internal/domain"
	"github.com/hairmatch/HM-ReserveService/internal/integrations/catalogservice"
	"github.com/hairmatch/HM-ReserveService/internal/integrations/usersservice"
)

// AvailabilityRepository resolves the configured working hours
type AvailabilityRepository interface {
	GetByHairdresserAndWeekday(ctx context.Context, hairdresserID int64, weekday domain.Weekday) (*domain.Availability, error)
}

// AgendaRepository provides the blocking intervals for a day
type AgendaRepository interface {
	ListForDay(ctx context.Context, hairdresserID int64, day time.Time) ([]*domain.AgendaEntry, error)
}

// UsersServiceClient resolves hairdresser records
type UsersServiceClient interface {
	GetHairdresser(ctx context.Context, hairdresserID int64) (*usersservice.Hairdresser, error)
}

// CatalogServiceClient resolves service records
type CatalogServiceClient interface {
	GetService(ctx context.Context, serviceID int64) (*catalogservice.Service, error)
}

// TimeProvider supplies the current time (injected for testing)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the narrow logging interface of the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider
type RealTimeProvider struct{}

// Now returns the current wall-clock time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
