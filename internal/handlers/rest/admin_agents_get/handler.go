package admin_agents_get

import (
	"errors"
	"net/http"

	"recycling/internal/entities"
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
	status := entities.AgentPending
	if raw := r.URL.Query().Get("status"); raw != "" {
		status = entities.AgentApprovalStatus(raw)
	}

	agents, err := h.service.AgentsByApproval(r.Context(), status)
	if err != nil {
		if errors.Is(err, agent.ErrInvalidApproval) {
			respond.Error(w, h.log, http.StatusBadRequest, respond.Message(err))
			return
		}
		respond.InternalError(w, h.log, r, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, presenter.Agents(agents))
}
