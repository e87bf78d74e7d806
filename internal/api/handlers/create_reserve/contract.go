package create_reserve

import (
	"context"

	createReserve "github.com/hairmatch/HM-ReserveService/internal/usecase/create_reserve"
)

type CreateReserveUseCase interface {
	Execute(ctx context.Context, req *createReserve.Request) (*createReserve.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
