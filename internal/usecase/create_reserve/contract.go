package create_reserve

import (
	"context"
	"time"

	"github.com/hairmatch/HM-ReserveService/internal/domain"
	"github.com/hairmatch/HM-ReserveService/internal/integrations/catalogservice"
	"github.com/hairmatch/HM-ReserveService/internal/integrations/usersservice"
)

// AgendaRepository is the ledger surface of the committer: re-reading
// the blocking intervals and writing the entry of the new appointment.
type AgendaRepository interface {
	ListForDay(ctx context.Context, hairdresserID int64, day time.Time) ([]*domain.AgendaEntry, error)
	Create(ctx context.Context, entry *domain.AgendaEntry) (*domain.AgendaEntry, error)
}

// ReserveRepository writes the reserve paired with the agenda entry and
// checks the customer's own reserves for overlaps.
type ReserveRepository interface {
	Create(ctx context.Context, res *domain.Reserve) (*domain.Reserve, error)
	ListOverlapping(ctx context.Context, customerID int64, start, end time.Time) ([]*domain.Reserve, error)
}

// UsersServiceClient resolves customer and hairdresser records
type UsersServiceClient interface {
	GetCustomer(ctx context.Context, customerID int64) (*usersservice.Customer, error)
	GetHairdresser(ctx context.Context, hairdresserID int64) (*usersservice.Hairdresser, error)
}

// CatalogServiceClient resolves service records
type CatalogServiceClient interface {
	GetService(ctx context.Context, serviceID int64) (*catalogservice.Service, error)
}

// TransactionManager runs the conflict check and the paired insert as
// one atomic unit.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the narrow logging interface of the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
