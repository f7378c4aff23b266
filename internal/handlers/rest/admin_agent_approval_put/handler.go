package admin_agent_approval_put

import (
	"errors"
	"net/http"

	"recycling/internal/entities"
	"recycling/internal/generated/dto"
	"recycling/internal/handlers/rest/presenter"
	"recycling/internal/handlers/rest/respond"
	"recycling/internal/pkg/validation"
	"recycling/internal/service/agent"
	"recycling/pkg/logger"
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
	agentID, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	var request dto.AgentApprovalRequest
	if err := validation.DecodeJSON(r.Body, &request); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.service.SetApproval(r.Context(), agentID, entities.AgentApprovalStatus(request.Status))
	if err != nil {
		switch {
		case errors.Is(err, agent.ErrInvalidAgentID),
			errors.Is(err, agent.ErrInvalidApproval):
			respond.Error(w, h.log, http.StatusBadRequest, respond.Message(err))
		case errors.Is(err, agent.ErrAgentNotFound):
			respond.Error(w, h.log, http.StatusNotFound, respond.Message(err))
		default:
			respond.InternalError(w, h.log, r, err)
		}
		return
	}

	h.log.Info("agent approval changed",
		logger.NewField("agent_id", updated.ID),
		logger.NewField("approval_status", updated.Approval.String()),
	)
	respond.JSON(w, h.log, http.StatusOK, presenter.Agent(updated))
}
