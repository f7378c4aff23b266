package admin_reconcile_post

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"recycling/internal/entities"
	"recycling/internal/handlers/rest/presenter"
	"recycling/internal/handlers/rest/respond"
	"recycling/internal/service/ledger"
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
	holderID, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}
	holder := entities.Holder{Kind: entities.HolderKind(mux.Vars(r)["kind"]), ID: holderID}

	balance, err := h.service.Reconcile(r.Context(), holder)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidHolder):
			respond.Error(w, h.log, http.StatusBadRequest, respond.Message(err))
		case errors.Is(err, ledger.ErrHolderNotFound):
			respond.Error(w, h.log, http.StatusNotFound, respond.Message(err))
		default:
			respond.InternalError(w, h.log, r, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, presenter.Balance(balance))
}
