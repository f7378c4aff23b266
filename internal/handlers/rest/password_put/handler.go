package password_put

import (
	"errors"
	"net/http"

	"recycling/internal/generated/dto"
	"recycling/internal/handlers/rest/respond"
	"recycling/internal/pkg/validation"
	"recycling/internal/service/agent"
	"recycling/internal/service/auth"
	"recycling/internal/service/user"
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

	var request dto.PasswordChangeRequest
	if err := validation.DecodeJSON(r.Body, &request); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	err := h.service.ChangePassword(r.Context(), identity.Holder, request.OldPassword, request.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrWeakPassword), errors.Is(err, auth.ErrPasswordTooLong):
			respond.Error(w, h.log, http.StatusBadRequest, respond.Message(err))
		case errors.Is(err, auth.ErrInvalidCredentials):
			respond.Error(w, h.log, http.StatusForbidden, "current password is incorrect")
		case errors.Is(err, user.ErrUserNotFound),
			errors.Is(err, agent.ErrAgentNotFound):
			respond.Error(w, h.log, http.StatusNotFound, respond.Message(err))
		default:
			respond.InternalError(w, h.log, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
