package list_availability

import (
	"context"

	"github.com/hairmatch/HM-ReserveService/internal/service/availability/models"
)

type AvailabilityService interface {
	GetSchedule(ctx context.Context, hairdresserID int64) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
