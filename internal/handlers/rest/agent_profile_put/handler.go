package agent_profile_put

import (
	"errors"
	"net/http"

	"recycling/internal/entities"
	"recycling/internal/generated/dto"
	"recycling/internal/handlers/rest/presenter"
	"recycling/internal/handlers/rest/respond"
	"recycling/internal/pkg/validation"
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

	var request dto.AgentUpdateRequest
	if err := validation.DecodeJSON(r.Body, &request); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.service.UpdateAgent(r.Context(), entities.AgentModify{
		ID:          &identity.Holder.ID,
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		Phone:       request.Phone,
		Governorate: request.Governorate,
		IsAvailable: request.IsAvailable,
	})
	if err != nil {
		switch {
		case errors.Is(err, agent.ErrMissingRequiredFields),
			errors.Is(err, agent.ErrInvalidName),
			errors.Is(err, agent.ErrInvalidPhone),
			errors.Is(err, agent.ErrInvalidGovernorate):
			respond.Error(w, h.log, http.StatusBadRequest, respond.Message(err))
		case errors.Is(err, agent.ErrAgentNotApproved):
			respond.Error(w, h.log, http.StatusForbidden, respond.Message(err))
		case errors.Is(err, agent.ErrAgentNotFound):
			respond.Error(w, h.log, http.StatusNotFound, respond.Message(err))
		default:
			respond.InternalError(w, h.log, r, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, presenter.Agent(updated))
}
