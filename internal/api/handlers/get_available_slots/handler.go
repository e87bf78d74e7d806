package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hairmatch/HM-ReserveService/internal/api/handlers"
	getAvailableSlots "github.com/hairmatch/HM-ReserveService/internal/usecase/get_available_slots"
)

const (
	msgInvalidHairdresserID = "invalid hairdresser ID"
	msgInvalidRequestBody   = "invalid request body"
	msgMissingService       = "service is required"
	msgMissingDate          = "date is required"
	msgInvalidDate          = "invalid date format, expected YYYY-MM-DD"
	msgHairdresserNotFound  = "hairdresser not found"
	msgServiceNotFound      = "service not found"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /reserve/slots/{hairdresser_id}
// Body: {"service": id, "date": "YYYY-MM-DD"}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	hairdresserID, err := strconv.ParseInt(vars["hairdresser_id"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /reserve/slots/{id} - Invalid hairdresser ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHairdresserID)
		return
	}

	var req SlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reserve/slots/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.ServiceID == 0 {
		h.logger.Warn("POST /reserve/slots/{id} - Missing service")
		handlers.RespondBadRequest(w, msgMissingService)
		return
	}
	if req.Date == "" {
		h.logger.Warn("POST /reserve/slots/{id} - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(hairdresserID)
	if err != nil {
		h.logger.Warn("POST /reserve/slots/{id} - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrHairdresserNotFound):
			h.logger.Warn("POST /reserve/slots/{id} - Hairdresser not found: hairdresser_id=%d", hairdresserID)
			handlers.RespondNotFound(w, msgHairdresserNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("POST /reserve/slots/{id} - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("POST /reserve/slots/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /reserve/slots/{id} - Failed to get slots: hairdresser_id=%d, service_id=%d, error=%v",
				hairdresserID, req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reserve/slots/{id} - Slots retrieved: hairdresser_id=%d, service_id=%d, slots_count=%d",
		hairdresserID, req.ServiceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
