package bags_get

import (
	"net/http"
	"strconv"

	"recycling/internal/handlers/rest/presenter"
	"recycling/internal/handlers/rest/respond"
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

	activeOnly := false
	if raw := r.URL.Query().Get("active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respond.Error(w, h.log, http.StatusBadRequest, "invalid active filter")
			return
		}
		activeOnly = parsed
	}

	bags, err := h.service.Bags(r.Context(), identity.Holder.ID, activeOnly)
	if err != nil {
		respond.InternalError(w, h.log, r, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, presenter.Bags(bags))
}
