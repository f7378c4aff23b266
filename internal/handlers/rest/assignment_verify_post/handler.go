package assignment_verify_post

import (
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"recycling/internal/generated/dto"
	"recycling/internal/handlers/rest/presenter"
	"recycling/internal/handlers/rest/respond"
	"recycling/internal/pkg/factory/reward_policy"
	"recycling/internal/pkg/validation"
	"recycling/internal/service/assignment"
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

	var request dto.AssignmentVerifyRequest
	if err := validation.DecodeJSON(r.Body, &request); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	verified, err := h.service.Verify(
		r.Context(),
		assignmentID,
		identity.Holder.ID,
		presenter.BagItemRequests(request.Items),
		pointer.GetString(request.DiscrepancyReport),
	)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidAssignmentID),
			errors.Is(err, assignment.ErrVerificationInputRequired),
			errors.Is(err, assignment.ErrInvalidTransition),
			errors.Is(err, reward_policy.ErrNoItems),
			errors.Is(err, reward_policy.ErrInvalidQuantity):
			respond.Error(w, h.log, http.StatusBadRequest, respond.Message(err))
		case errors.Is(err, reward_policy.ErrUnknownItemType):
			respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, assignment.ErrNotAssignedAgent):
			respond.Error(w, h.log, http.StatusForbidden, respond.Message(err))
		case errors.Is(err, assignment.ErrAssignmentNotFound):
			respond.Error(w, h.log, http.StatusNotFound, respond.Message(err))
		default:
			respond.InternalError(w, h.log, r, err)
		}
		return
	}

	h.log.Info("bag verified",
		logger.NewField("assignment_id", verified.ID),
		logger.NewField("status", verified.Status.String()),
	)
	respond.JSON(w, h.log, http.StatusOK, presenter.Assignment(verified))
}
