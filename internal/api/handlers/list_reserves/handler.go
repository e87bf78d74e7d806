package list_reserves

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hairmatch/HM-ReserveService/internal/api/handlers"
	"github.com/hairmatch/HM-ReserveService/internal/service/reserves"
)

const (
	msgInvalidCustomerID = "invalid customer ID"
	msgCustomerNotFound  = "customer not found"
)

type Handler struct {
	service ReserveService
	logger  Logger
}

func NewHandler(service ReserveService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /reserve/list and GET /reserve/list/{customer_id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	customerIDStr, hasCustomer := vars["customer_id"]

	if !hasCustomer {
		result, err := h.service.List(r.Context())
		if err != nil {
			h.logger.Error("GET /reserve/list - Failed to list reserves: error=%v", err)
			handlers.RespondInternalError(w)
			return
		}

		h.logger.Info("GET /reserve/list - Reserves listed: count=%d", len(result.Reserves))
		handlers.RespondData(w, http.StatusOK, result)
		return
	}

	customerID, err := strconv.ParseInt(customerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /reserve/list/{customer_id} - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	result, err := h.service.ListByCustomer(r.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, reserves.ErrCustomerNotFound):
			h.logger.Warn("GET /reserve/list/{customer_id} - Customer not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		default:
			h.logger.Error("GET /reserve/list/{customer_id} - Failed to list reserves: customer_id=%d, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reserve/list/{customer_id} - Reserves listed: customer_id=%d, count=%d",
		customerID, len(result.Reserves))
	handlers.RespondData(w, http.StatusOK, result)
}
