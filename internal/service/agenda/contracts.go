package agenda

import (
	"context"

	"github.com/hairmatch/HM-ReserveService/internal/domain"
	"github.com/hairmatch/HM-ReserveService/internal/integrations/usersservice"
)

// AgendaRepository is the ledger storage surface of the service
type AgendaRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.AgendaEntry, error)
	List(ctx context.Context, hairdresserID *int64) ([]*domain.AgendaEntry, error)
	Delete(ctx context.Context, id int64) error
}

// ReserveRepository removes the reserve paired with a ledger entry
type ReserveRepository interface {
	Delete(ctx context.Context, id int64) error
}

// UsersServiceClient resolves hairdresser records
type UsersServiceClient interface {
	GetHairdresser(ctx context.Context, hairdresserID int64) (*usersservice.Hairdresser, error)
}

// TransactionManager keeps the paired delete atomic
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the narrow logging interface of the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
