package notifications_get

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

	unreadOnly := false
	if raw := r.URL.Query().Get("unread"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respond.Error(w, h.log, http.StatusBadRequest, "invalid unread filter")
			return
		}
		unreadOnly = parsed
	}

	notifications, err := h.service.List(r.Context(), identity.Holder, unreadOnly)
	if err != nil {
		respond.InternalError(w, h.log, r, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, presenter.Notifications(notifications))
}
