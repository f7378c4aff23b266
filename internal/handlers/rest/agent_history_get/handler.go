package agent_history_get

import (
	"net/http"

	"recycling/internal/handlers/rest/presenter"
	"recycling/internal/handlers/rest/respond"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := respond.Identity(r)
	if !ok {
		respond.Error(w, h.log, http.StatusUnauthorized, "missing bearer token")
		return
	}

	history, err := h.service.AgentHistory(r.Context(), identity.Holder.ID)
	if err != nil {
		respond.InternalError(w, h.log, r, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, presenter.Assignments(history))
}
