package auth_login_post

import (
	"errors"
	"net/http"

	"recycling/internal/entities"
	"recycling/internal/generated/dto"
	"recycling/internal/handlers/rest/respond"
	"recycling/internal/pkg/validation"
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
	var request dto.LoginRequest
	if err := validation.DecodeJSON(r.Body, &request); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.service.Login(r.Context(), entities.HolderKind(request.Role), request.Email, request.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidRole):
			respond.Error(w, h.log, http.StatusBadRequest, respond.Message(err))
		case errors.Is(err, auth.ErrInvalidCredentials):
			respond.Error(w, h.log, http.StatusUnauthorized, respond.Message(err))
		case errors.Is(err, auth.ErrAccountPending),
			errors.Is(err, auth.ErrAccountRejected):
			respond.Error(w, h.log, http.StatusForbidden, respond.Message(err))
		default:
			respond.InternalError(w, h.log, r, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.LoginResponse{
		ID:        session.Identity.Holder.ID,
		Role:      session.Identity.Holder.Kind.String(),
		Email:     session.Identity.Email,
		Name:      session.Name,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	})
}
