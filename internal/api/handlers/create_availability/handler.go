package create_availability

import (
	"errors"
	"net/http"

	"github.com/hairmatch/HM-ReserveService/internal/api/handlers"
	"github.com/hairmatch/HM-ReserveService/internal/service/availability"
	"github.com/hairmatch/HM-ReserveService/internal/service/availability/models"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidWeekday      = "invalid weekday name"
	msgInvalidTime         = "invalid time format, expected HH:MM"
	msgInvalidWorkingHours = "invalid working hours"
	msgDuplicateWeekday    = "availability already exists for this weekday"
	msgHairdresserNotFound = "hairdresser not found"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /availability/create
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/create - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidWeekday):
			h.logger.Warn("POST /availability/create - Invalid weekday: hairdresser=%d, weekday=%q",
				req.HairdresserID, req.Weekday)
			handlers.RespondBadRequest(w, msgInvalidWeekday)

		case errors.Is(err, models.ErrInvalidTime):
			h.logger.Warn("POST /availability/create - Invalid time: hairdresser=%d, error=%v",
				req.HairdresserID, err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /availability/create - Invalid working hours: hairdresser=%d, error=%v",
				req.HairdresserID, err)
			handlers.RespondBadRequest(w, msgInvalidWorkingHours)

		case errors.Is(err, availability.ErrDuplicateWeekday):
			h.logger.Warn("POST /availability/create - Duplicate weekday: hairdresser=%d, weekday=%q",
				req.HairdresserID, req.Weekday)
			handlers.RespondBadRequest(w, msgDuplicateWeekday)

		case errors.Is(err, availability.ErrHairdresserNotFound):
			h.logger.Warn("POST /availability/create - Hairdresser not found: hairdresser=%d", req.HairdresserID)
			handlers.RespondNotFound(w, msgHairdresserNotFound)

		default:
			h.logger.Error("POST /availability/create - Failed to create availability: hairdresser=%d, error=%v",
				req.HairdresserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability/create - Availability created: id=%d, hairdresser=%d, weekday=%q",
		result.ID, req.HairdresserID, req.Weekday)
	handlers.RespondData(w, http.StatusCreated, result)
}
