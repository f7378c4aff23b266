package assignment_reason_post

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"recycling/internal/entities"
	"recycling/internal/generated/dto"
	"recycling/internal/handlers/rest/presenter"
	"recycling/internal/handlers/rest/respond"
	"recycling/internal/pkg/validation"
	"recycling/internal/service/assignment"
	"recycling/pkg/logger"
)

type transition func(ctx context.Context, assignmentID, agentID int64, reason string) (*entities.Assignment, error)

// Handler переходы назначения с обязательной причиной: cancel и reject.
type Handler struct {
	log     handlerLogger
	service Service
	actions map[string]transition
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		actions: map[string]transition{
			"cancel": service.Cancel,
			"reject": service.Reject,
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := respond.Identity(r)
	if !ok {
		respond.Error(w, h.log, http.StatusUnauthorized, "missing bearer token")
		return
	}

	action := mux.Vars(r)["action"]
	do, ok := h.actions[action]
	if !ok {
		respond.Error(w, h.log, http.StatusNotFound, "unknown assignment action")
		return
	}

	assignmentID, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	var request dto.AssignmentReasonRequest
	if err := validation.DecodeJSON(r.Body, &request); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := do(r.Context(), assignmentID, identity.Holder.ID, request.Reason)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidAssignmentID),
			errors.Is(err, assignment.ErrReasonRequired),
			errors.Is(err, assignment.ErrInvalidTransition):
			respond.Error(w, h.log, http.StatusBadRequest, respond.Message(err))
		case errors.Is(err, assignment.ErrNotAssignedAgent),
			errors.Is(err, assignment.ErrOfferedToAnotherAgent):
			respond.Error(w, h.log, http.StatusForbidden, respond.Message(err))
		case errors.Is(err, assignment.ErrAssignmentNotFound):
			respond.Error(w, h.log, http.StatusNotFound, respond.Message(err))
		default:
			respond.InternalError(w, h.log, r, err)
		}
		return
	}

	h.log.Info("assignment moved",
		logger.NewField("action", action),
		logger.NewField("assignment_id", updated.ID),
		logger.NewField("status", updated.Status.String()),
	)
	respond.JSON(w, h.log, http.StatusOK, presenter.Assignment(updated))
}
