package bag_post

import (
	"errors"
	"net/http"

	"recycling/internal/generated/dto"
	"recycling/internal/handlers/rest/presenter"
	"recycling/internal/handlers/rest/respond"
	"recycling/internal/pkg/factory/reward_policy"
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

	var request dto.BagCreateRequest
	if err := validation.DecodeJSON(r.Body, &request); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	overview, err := h.service.PlaceBag(
		r.Context(),
		identity.Holder.ID,
		presenter.BagItemRequests(request.Items),
		request.Latitude,
		request.Longitude,
	)
	if err != nil {
		switch {
		case errors.Is(err, bag.ErrInvalidLocation),
			errors.Is(err, reward_policy.ErrNoItems),
			errors.Is(err, reward_policy.ErrInvalidQuantity):
			respond.Error(w, h.log, http.StatusBadRequest, respond.Message(err))
		case errors.Is(err, reward_policy.ErrUnknownItemType):
			// в тексте идентификатор неизвестного типа
			respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, bag.ErrActiveBagExists):
			respond.Error(w, h.log, http.StatusConflict, respond.Message(err))
		default:
			respond.InternalError(w, h.log, r, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, presenter.BagOverview(overview))
}
