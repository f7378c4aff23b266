package assignment_action_post

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"recycling/internal/entities"
	"recycling/internal/handlers/rest/presenter"
	"recycling/internal/handlers/rest/respond"
	"recycling/internal/service/agent"
	"recycling/internal/service/assignment"
	"recycling/pkg/logger"
)

type transition func(ctx context.Context, assignmentID, agentID int64) (*entities.Assignment, error)

// Handler переходы назначения без тела запроса: accept, start и complete.
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
			"accept":   service.Accept,
			"start":    service.StartDelivery,
			"complete": service.Complete,
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

	updated, err := do(r.Context(), assignmentID, identity.Holder.ID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidAssignmentID),
			errors.Is(err, assignment.ErrInvalidTransition),
			errors.Is(err, assignment.ErrRegionMismatch):
			respond.Error(w, h.log, http.StatusBadRequest, respond.Message(err))
		case errors.Is(err, assignment.ErrNotAssignedAgent),
			errors.Is(err, assignment.ErrOfferedToAnotherAgent),
			errors.Is(err, assignment.ErrAgentNotApproved):
			respond.Error(w, h.log, http.StatusForbidden, respond.Message(err))
		case errors.Is(err, assignment.ErrAgentBusy):
			respond.Error(w, h.log, http.StatusConflict, respond.Message(err))
		case errors.Is(err, assignment.ErrAssignmentNotFound),
			errors.Is(err, agent.ErrAgentNotFound):
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
