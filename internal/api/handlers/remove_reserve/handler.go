package remove_reserve

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
	msgReserveRemoved   = "reserve removed successfully"
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

// Handle DELETE /reserve/remove/{reserve_id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reserveIDStr := vars["reserve_id"]

	reserveID, err := strconv.ParseInt(reserveIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /reserve/remove/{id} - Invalid reserve ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReserveID)
		return
	}

	err = h.service.Delete(r.Context(), reserveID)
	if err != nil {
		switch {
		case errors.Is(err, reserves.ErrReserveNotFound):
			h.logger.Warn("DELETE /reserve/remove/{id} - Reserve not found: reserve_id=%d", reserveID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /reserve/remove/{id} - Failed to remove reserve: reserve_id=%d, error=%v",
				reserveID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reserve/remove/{id} - Reserve removed successfully: reserve_id=%d", reserveID)
	handlers.RespondMessage(w, http.StatusOK, msgReserveRemoved)
}
