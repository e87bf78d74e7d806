package list_agenda

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hairmatch/HM-ReserveService/internal/api/handlers"
	"github.com/hairmatch/HM-ReserveService/internal/service/agenda"
)

const (
	msgInvalidHairdresserID = "invalid hairdresser ID"
	msgHairdresserNotFound  = "hairdresser not found"
)

type Handler struct {
	service AgendaService
	logger  Logger
}

func NewHandler(service AgendaService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /agenda/list and GET /agenda/list/{hairdresser_id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hairdresserIDStr, hasHairdresser := vars["hairdresser_id"]

	if !hasHairdresser {
		result, err := h.service.List(r.Context())
		if err != nil {
			h.logger.Error("GET /agenda/list - Failed to list agenda: error=%v", err)
			handlers.RespondInternalError(w)
			return
		}

		h.logger.Info("GET /agenda/list - Agenda listed: count=%d", len(result.Agenda))
		handlers.RespondData(w, http.StatusOK, result)
		return
	}

	hairdresserID, err := strconv.ParseInt(hairdresserIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /agenda/list/{hairdresser_id} - Invalid hairdresser ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHairdresserID)
		return
	}

	result, err := h.service.ListByHairdresser(r.Context(), hairdresserID)
	if err != nil {
		switch {
		case errors.Is(err, agenda.ErrHairdresserNotFound):
			h.logger.Warn("GET /agenda/list/{hairdresser_id} - Hairdresser not found: hairdresser=%d", hairdresserID)
			handlers.RespondNotFound(w, msgHairdresserNotFound)

		default:
			h.logger.Error("GET /agenda/list/{hairdresser_id} - Failed to list agenda: hairdresser=%d, error=%v",
				hairdresserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /agenda/list/{hairdresser_id} - Agenda listed: hairdresser=%d, count=%d",
		hairdresserID, len(result.Agenda))
	handlers.RespondData(w, http.StatusOK, result)
}
