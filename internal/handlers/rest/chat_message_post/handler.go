package chat_message_post

import (
	"errors"
	"net/http"

	"recycling/internal/generated/dto"
	"recycling/internal/handlers/rest/presenter"
	"recycling/internal/handlers/rest/respond"
	"recycling/internal/pkg/validation"
	"recycling/internal/service/assignment"
	"recycling/internal/service/chat"
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

	assignmentID, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	var request dto.ChatMessageRequest
	if err := validation.DecodeJSON(r.Body, &request); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	message, err := h.service.Send(r.Context(), assignmentID, identity, request.Message)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrInvalidAssignmentID),
			errors.Is(err, chat.ErrEmptyMessage),
			errors.Is(err, chat.ErrMessageTooLong):
			respond.Error(w, h.log, http.StatusBadRequest, respond.Message(err))
		case errors.Is(err, chat.ErrNotParticipant):
			respond.Error(w, h.log, http.StatusForbidden, respond.Message(err))
		case errors.Is(err, assignment.ErrAssignmentNotFound):
			respond.Error(w, h.log, http.StatusNotFound, respond.Message(err))
		default:
			respond.InternalError(w, h.log, r, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, presenter.ChatMessage(message))
}
