package bag_assignment_get

import (
	"errors"
	"net/http"

	"recycling/internal/handlers/rest/presenter"
	"recycling/internal/handlers/rest/respond"
	"recycling/internal/service/assignment"
	"recycling/internal/service/bag"
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

	bagID, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	latest, err := h.service.ForBag(r.Context(), bagID, identity)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrForbidden):
			respond.Error(w, h.log, http.StatusForbidden, respond.Message(err))
		case errors.Is(err, assignment.ErrAssignmentNotFound),
			errors.Is(err, bag.ErrBagNotFound):
			respond.Error(w, h.log, http.StatusNotFound, respond.Message(err))
		default:
			respond.InternalError(w, h.log, r, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, presenter.Assignment(latest))
}
