package get_reserve

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hairmatch/HM-ReserveService/internal/api/handlers"
	"github.com/hairmatch/HM-ReserveService/internal/service/reserves"
)

const (
	msgInvalidReserveID = "invalid reserve ID"
	msgNotFound         = "reserve not found"
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

// Handle GET /reserve/{reserve_id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reserveIDStr := vars["reserve_id"]

	reserveID, err := strconv.ParseInt(reserveIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /reserve/{id} - Invalid reserve ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReserveID)
		return
	}

	reserve, err := h.service.GetByID(r.Context(), reserveID)
	if err != nil {
		switch {
		case errors.Is(err, reserves.ErrReserveNotFound):
			h.logger.Warn("GET /reserve/{id} - Reserve not found: reserve_id=%d", reserveID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /reserve/{id} - Failed to get reserve: reserve_id=%d, error=%v", reserveID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reserve/{id} - Reserve retrieved successfully: reserve_id=%d", reserveID)
	handlers.RespondData(w, http.StatusOK, reserve)
}
