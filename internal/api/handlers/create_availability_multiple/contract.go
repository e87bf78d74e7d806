package create_availability_multiple

import (
	"context"

	"github.com/hairmatch/HM-ReserveService/internal/service/availability/models"
)

type AvailabilityService interface {
	CreateMultiple(ctx context.Context, hairdresserID int64, reqs []*models.CreateRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
