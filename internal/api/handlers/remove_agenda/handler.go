package remove_agenda

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hairmatch/HM-ReserveService/internal/api/handlers"
	"github.com/hairmatch/HM-ReserveService/internal/service/agenda"
)

const (
	msgInvalidAgendaID = "invalid agenda entry ID"
	msgNotFound        = "agenda entry not found"
	msgAgendaRemoved   = "agenda entry removed successfully"
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

// Handle DELETE /agenda/remove/{agenda_id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	agendaIDStr := vars["agenda_id"]

	agendaID, err := strconv.ParseInt(agendaIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /agenda/remove/{id} - Invalid agenda entry ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAgendaID)
		return
	}

	err = h.service.Delete(r.Context(), agendaID)
	if err != nil {
		switch {
		case errors.Is(err, agenda.ErrEntryNotFound):
			h.logger.Warn("DELETE /agenda/remove/{id} - Agenda entry not found: agenda_id=%d", agendaID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /agenda/remove/{id} - Failed to remove agenda entry: agenda_id=%d, error=%v",
				agendaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /agenda/remove/{id} - Agenda entry removed: agenda_id=%d, paired reserve removed", agendaID)
	handlers.RespondMessage(w, http.StatusOK, msgAgendaRemoved)
}
