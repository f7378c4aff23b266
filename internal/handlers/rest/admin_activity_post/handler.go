package admin_activity_post

import (
	"errors"
	"net/http"

	"recycling/internal/entities"
	"recycling/internal/generated/dto"
	"recycling/internal/handlers/rest/presenter"
	"recycling/internal/handlers/rest/respond"
	"recycling/internal/pkg/validation"
	"recycling/internal/service/ledger"
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
	var request dto.ActivityCreateRequest
	if err := validation.DecodeJSON(r.Body, &request); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	activity := entities.Activity{
		Holder: entities.Holder{Kind: entities.HolderKind(request.HolderType), ID: request.HolderID},
		Title:  request.Title,
		Points: request.Points,
		Type:   entities.ActivityType(request.Type),
	}

	balance, err := h.service.AddActivity(r.Context(), activity)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidHolder),
			errors.Is(err, ledger.ErrEmptyTitle),
			errors.Is(err, ledger.ErrInvalidActivityType),
			errors.Is(err, ledger.ErrInvalidPointsSign):
			respond.Error(w, h.log, http.StatusBadRequest, respond.Message(err))
		case errors.Is(err, ledger.ErrHolderNotFound):
			respond.Error(w, h.log, http.StatusNotFound, respond.Message(err))
		default:
			respond.InternalError(w, h.log, r, err)
		}
		return
	}

	h.log.Info("manual activity recorded",
		logger.NewField("holder_type", activity.Holder.Kind.String()),
		logger.NewField("holder_id", activity.Holder.ID),
		logger.NewField("points", activity.Points),
	)
	respond.JSON(w, h.log, http.StatusCreated, presenter.Balance(balance))
}
