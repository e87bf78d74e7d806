package list_reserves

import (
	"context"

	"github.com/hairmatch/HM-ReserveService/internal/service/reserves/models"
)

type ReserveService interface {
	List(ctx context.Context) (*models.ReserveListResponse, error)
	ListByCustomer(ctx context.Context, customerID int64) (*models.ReserveListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
