package remove_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hairmatch/HM-ReserveService/internal/api/handlers"
	"github.com/hairmatch/HM-ReserveService/internal/service/availability"
)

const (
	msgInvalidAvailabilityID = "invalid availability ID"
	msgNotFound              = "availability not found"
	msgAvailabilityRemoved   = "availability removed successfully"
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

// Handle DELETE /availability/remove/{availability_id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	availabilityIDStr := vars["availability_id"]

	availabilityID, err := strconv.ParseInt(availabilityIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /availability/remove/{id} - Invalid availability ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAvailabilityID)
		return
	}

	err = h.service.Delete(r.Context(), availabilityID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrAvailabilityNotFound):
			h.logger.Warn("DELETE /availability/remove/{id} - Availability not found: availability_id=%d",
				availabilityID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /availability/remove/{id} - Failed to remove availability: availability_id=%d, error=%v",
				availabilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /availability/remove/{id} - Availability removed: availability_id=%d", availabilityID)
	handlers.RespondMessage(w, http.StatusOK, msgAvailabilityRemoved)
}
