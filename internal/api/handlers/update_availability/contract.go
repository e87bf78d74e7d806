package update_availability

import (
	"context"

	"github.com/hairmatch/HM-ReserveService/internal/service/availability/models"
)

type AvailabilityService interface {
	Update(ctx context.Context, id int64, req *models.UpdateRequest) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
