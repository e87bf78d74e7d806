package list_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hairmatch/HM-ReserveService/internal/api/handlers"
	"github.com/hairmatch/HM-ReserveService/internal/service/availability"
)

const (
	msgInvalidHairdresserID = "invalid hairdresser ID"
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

// Handle GET /availability/list/{hairdresser_id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hairdresserIDStr := vars["hairdresser_id"]

	hairdresserID, err := strconv.ParseInt(hairdresserIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability/list/{id} - Invalid hairdresser ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHairdresserID)
		return
	}

	result, err := h.service.GetSchedule(r.Context(), hairdresserID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrHairdresserNotFound):
			h.logger.Warn("GET /availability/list/{id} - Hairdresser not found: hairdresser=%d", hairdresserID)
			handlers.RespondNotFound(w, msgHairdresserNotFound)

		default:
			h.logger.Error("GET /availability/list/{id} - Failed to get schedule: hairdresser=%d, error=%v",
				hairdresserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/list/{id} - Schedule retrieved: hairdresser=%d, rows=%d",
		hairdresserID, len(result.Availability))
	handlers.RespondData(w, http.StatusOK, result)
}
