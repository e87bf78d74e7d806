package update_availability_multiple

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hairmatch/HM-ReserveService/internal/api/handlers"
	"github.com/hairmatch/HM-ReserveService/internal/service/availability"
	"github.com/hairmatch/HM-ReserveService/internal/service/availability/models"
)

const (
	msgInvalidHairdresserID = "invalid hairdresser ID"
	msgInvalidRequestBody   = "invalid request body"
	msgEmptySchedule        = "at least one availability row is required"
	msgInvalidWeekday       = "invalid weekday name"
	msgInvalidTime          = "invalid time format, expected HH:MM"
	msgInvalidWorkingHours  = "invalid working hours"
	msgDuplicateWeekday     = "availability already exists for this weekday"
	msgHairdresserNotFound  = "hairdresser not found"
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

// Handle PUT /availability/update/multiple/{hairdresser_id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hairdresserIDStr := vars["hairdresser_id"]

	hairdresserID, err := strconv.ParseInt(hairdresserIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /availability/update/multiple/{id} - Invalid hairdresser ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHairdresserID)
		return
	}

	var reqs []*models.CreateRequest
	if err := handlers.DecodeJSON(r, &reqs); err != nil {
		h.logger.Warn("PUT /availability/update/multiple/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if len(reqs) == 0 {
		h.logger.Warn("PUT /availability/update/multiple/{id} - Empty schedule: hairdresser=%d", hairdresserID)
		handlers.RespondBadRequest(w, msgEmptySchedule)
		return
	}

	result, err := h.service.ReplaceSchedule(r.Context(), hairdresserID, reqs)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidWeekday):
			h.logger.Warn("PUT /availability/update/multiple/{id} - Invalid weekday: hairdresser=%d, error=%v",
				hairdresserID, err)
			handlers.RespondBadRequest(w, msgInvalidWeekday)

		case errors.Is(err, models.ErrInvalidTime):
			h.logger.Warn("PUT /availability/update/multiple/{id} - Invalid time: hairdresser=%d, error=%v",
				hairdresserID, err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("PUT /availability/update/multiple/{id} - Invalid working hours: hairdresser=%d, error=%v",
				hairdresserID, err)
			handlers.RespondBadRequest(w, msgInvalidWorkingHours)

		case errors.Is(err, availability.ErrDuplicateWeekday):
			h.logger.Warn("PUT /availability/update/multiple/{id} - Duplicate weekday: hairdresser=%d, error=%v",
				hairdresserID, err)
			handlers.RespondBadRequest(w, msgDuplicateWeekday)

		case errors.Is(err, availability.ErrHairdresserNotFound):
			h.logger.Warn("PUT /availability/update/multiple/{id} - Hairdresser not found: hairdresser=%d",
				hairdresserID)
			handlers.RespondNotFound(w, msgHairdresserNotFound)

		default:
			h.logger.Error("PUT /availability/update/multiple/{id} - Failed to replace schedule: hairdresser=%d, error=%v",
				hairdresserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /availability/update/multiple/{id} - Schedule replaced: hairdresser=%d, rows=%d",
		hairdresserID, len(result.Availability))
	handlers.RespondData(w, http.StatusOK, result)
}
