package agent_profile_get

import (
	"errors"
	"net/http"

	"recycling/internal/handlers/rest/presenter"
	"recycling/internal/handlers/rest/respond"
	"recycling/internal/service/agent"
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

	profile, err := h.service.GetAgent(r.Context(), identity.Holder.ID)
	if err != nil {
		if errors.Is(err, agent.ErrAgentNotFound) {
			respond.Error(w, h.log, http.StatusNotFound, respond.Message(err))
			return
		}
		respond.InternalError(w, h.log, r, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, presenter.Agent(profile))
}
