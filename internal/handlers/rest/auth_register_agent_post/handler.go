package auth_register_agent_post

import (
	"errors"
	"net/http"

	"recycling/internal/entities"
	"recycling/internal/generated/dto"
	"recycling/internal/handlers/rest/presenter"
	"recycling/internal/handlers/rest/respond"
	"recycling/internal/pkg/validation"
	"recycling/internal/service/agent"
	"recycling/internal/service/auth"
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
	var request dto.RegisterAgentRequest
	if err := validation.DecodeJSON(r.Body, &request); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.service.RegisterAgent(r.Context(), entities.AgentModify{
		FirstName:   &request.FirstName,
		LastName:    &request.LastName,
		Email:       &request.Email,
		Phone:       &request.Phone,
		Password:    &request.Password,
		Governorate: &request.Governorate,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingRequiredFields),
			errors.Is(err, auth.ErrInvalidName),
			errors.Is(err, auth.ErrInvalidEmail),
			errors.Is(err, auth.ErrInvalidPhone),
			errors.Is(err, auth.ErrInvalidGovernorate),
			errors.Is(err, auth.ErrWeakPassword),
			errors.Is(err, auth.ErrPasswordTooLong):
			respond.Error(w, h.log, http.StatusBadRequest, respond.Message(err))
		case errors.Is(err, agent.ErrEmailTaken):
			respond.Error(w, h.log, http.StatusConflict, respond.Message(err))
		default:
			respond.InternalError(w, h.log, r, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, presenter.Agent(created))
}
