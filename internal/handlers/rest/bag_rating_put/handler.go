package bag_rating_put

import (
	"errors"
	"net/http"

	"recycling/internal/generated/dto"
	"recycling/internal/handlers/rest/presenter"
	"recycling/internal/handlers/rest/respond"
	"recycling/internal/pkg/validation"
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

	var request dto.RatingRequest
	if err = validation.DecodeJSON(r.Body, &request); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	var comment string
	if request.Comment != nil {
		comment = *request.Comment
	}

	result, err := h.service.RateAgent(r.Context(), bagID, identity.Holder.ID, request.Stars, comment)
	if err != nil {
		switch {
		case errors.Is(err, bag.ErrInvalidBagID),
			errors.Is(err, bag.ErrInvalidRating),
			errors.Is(err, bag.ErrCommentTooLong),
			errors.Is(err, bag.ErrBagNotDelivered),
			errors.Is(err, bag.ErrNoAgentToRate):
			respond.Error(w, h.log, http.StatusBadRequest, respond.Message(err))
		case errors.Is(err, bag.ErrNotBagOwner):
			respond.Error(w, h.log, http.StatusForbidden, respond.Message(err))
		case errors.Is(err, bag.ErrBagNotFound):
			respond.Error(w, h.log, http.StatusNotFound, respond.Message(err))
		default:
			respond.InternalError(w, h.log, r, err)
		}
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	respond.JSON(w, h.log, status, presenter.Rating(result))
}
