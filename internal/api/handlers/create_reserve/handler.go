package create_reserve

import (
	"errors"
	"net/http"

	"github.com/hairmatch/HM-ReserveService/internal/api/handlers"
	createReserve "github.com/hairmatch/HM-ReserveService/internal/usecase/create_reserve"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidStartTime     = "invalid start_time format, expected ISO 8601"
	msgSlotTaken            = "the requested slot is no longer available"
	msgCustomerDoubleBooked = "customer already has a reserve overlapping this time"
	msgCustomerNotFound     = "customer not found"
	msgHairdresserNotFound  = "hairdresser not found"
	msgServiceNotFound      = "service not found"
	msgReserveCreated       = "reserve created successfully"
)

type Handler struct {
	useCase CreateReserveUseCase
	logger  Logger
}

func NewHandler(useCase CreateReserveUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /reserve/create
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReserveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reserve/create - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reserve/create - Failed to parse start_time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReserve.ErrSlotTaken):
			h.logger.Warn("POST /reserve/create - Slot taken: customer=%d, hairdresser=%d, start_time=%s",
				req.CustomerID, req.HairdresserID, req.StartTime)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createReserve.ErrCustomerDoubleBooked):
			h.logger.Warn("POST /reserve/create - Customer double booked: customer=%d, start_time=%s",
				req.CustomerID, req.StartTime)
			handlers.RespondConflict(w, msgCustomerDoubleBooked)

		case errors.Is(err, createReserve.ErrCustomerNotFound):
			h.logger.Warn("POST /reserve/create - Customer not found: customer=%d", req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createReserve.ErrHairdresserNotFound):
			h.logger.Warn("POST /reserve/create - Hairdresser not found: hairdresser=%d", req.HairdresserID)
			handlers.RespondNotFound(w, msgHairdresserNotFound)

		case errors.Is(err, createReserve.ErrServiceNotFound):
			h.logger.Warn("POST /reserve/create - Service not found: service=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createReserve.ErrInvalidInput):
			h.logger.Warn("POST /reserve/create - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /reserve/create - Failed to create reserve: customer=%d, hairdresser=%d, error=%v",
				req.CustomerID, req.HairdresserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reserve/create - Reserve created: reserve_id=%d, customer=%d, hairdresser=%d",
		result.ID, req.CustomerID, req.HairdresserID)
	handlers.RespondMessage(w, http.StatusCreated, msgReserveCreated)
}
