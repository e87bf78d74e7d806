package reserves

import (
	"context"

	"github.com/hairmatch/HM-ReserveService/internal/domain"
	"github.com/hairmatch/HM-ReserveService/internal/integrations/usersservice"
)

// ReserveRepository is the reserve storage surface of the service
type ReserveRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reserve, error)
	List(ctx context.Context, customerID *int64) ([]*domain.Reserve, error)
	Delete(ctx context.Context, id int64) error
}

// AgendaRepository removes the ledger entry paired with a reserve
type AgendaRepository interface {
	DeleteByReserveID(ctx context.Context, reserveID int64) error
}

// UsersServiceClient resolves customer records
type UsersServiceClient interface {
	GetCustomer(ctx context.Context, customerID int64) (*usersservice.Customer, error)
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
