package update_availability

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
	msgInvalidAvailabilityID = "invalid availability ID"
	msgInvalidRequestBody    = "invalid request body"
	msgInvalidWeekday        = "invalid weekday name"
	msgInvalidTime           = "invalid time format, expected HH:MM"
	msgInvalidWorkingHours   = "invalid working hours"
	msgDuplicateWeekday      = "availability already exists for this weekday"
	msgNotFound              = "availability not found"
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

// Handle PUT /availability/update/{availability_id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	availabilityIDStr := vars["availability_id"]

	availabilityID, err := strconv.ParseInt(availabilityIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /availability/update/{id} - Invalid availability ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAvailabilityID)
		return
	}

	var req models.UpdateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /availability/update/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), availabilityID, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidWeekday):
			h.logger.Warn("PUT /availability/update/{id} - Invalid weekday: availability_id=%d, error=%v",
				availabilityID, err)
			handlers.RespondBadRequest(w, msgInvalidWeekday)

		case errors.Is(err, models.ErrInvalidTime):
			h.logger.Warn("PUT /availability/update/{id} - Invalid time: availability_id=%d, error=%v",
				availabilityID, err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("PUT /availability/update/{id} - Invalid working hours: availability_id=%d, error=%v",
				availabilityID, err)
			handlers.RespondBadRequest(w, msgInvalidWorkingHours)

		case errors.Is(err, availability.ErrDuplicateWeekday):
			h.logger.Warn("PUT /availability/update/{id} - Duplicate weekday: availability_id=%d", availabilityID)
			handlers.RespondBadRequest(w, msgDuplicateWeekday)

		case errors.Is(err, availability.ErrAvailabilityNotFound):
			h.logger.Warn("PUT /availability/update/{id} - Availability not found: availability_id=%d", availabilityID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /availability/update/{id} - Failed to update availability: availability_id=%d, error=%v",
				availabilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /availability/update/{id} - Availability updated: availability_id=%d, hairdresser=%d",
		availabilityID, result.HairdresserID)
	handlers.RespondData(w, http.StatusOK, result)
}
