package availability

import (
	"context"

	"github.com/hairmatch/HM-ReserveService/internal/domain"
	"github.com/hairmatch/HM-ReserveService/internal/integrations/usersservice"
)

// AvailabilityRepository is the working-hours storage surface
type AvailabilityRepository interface {
	Create(ctx context.Context, av *domain.Availability) (*domain.Availability, error)
	GetByID(ctx context.Context, id int64) (*domain.Availability, error)
	ListByHairdresser(ctx context.Context, hairdresserID int64) ([]*domain.Availability, error)
	Update(ctx context.Context, id int64, patch domain.AvailabilityPatch) (*domain.Availability, error)
	Delete(ctx context.Context, id int64) error
	DeleteByHairdresser(ctx context.Context, hairdresserID int64) error
}

// UsersServiceClient resolves hairdresser records
type UsersServiceClient interface {
	GetHairdresser(ctx context.Context, hairdresserID int64) (*usersservice.Hairdresser, error)
}

// TransactionManager keeps bulk schedule writes atomic
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the narrow logging interface of the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
