package list_agenda

import (
	"context"

	"github.com/hairmatch/HM-ReserveService/internal/service/agenda/models"
)

type AgendaService interface {
	List(ctx context.Context) (*models.AgendaListResponse, error)
	ListByHairdresser(ctx context.Context, hairdresserID int64) (*models.AgendaListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
