package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"recycling/pkg/logger"
)

const pingTimeout = 2 * time.Second

// Handler отвечает 204, пока сервис принимает трафик и база доступна.
type Handler struct {
	log            handlerLogger
	isShuttingDown *atomic.Bool
	database       Pinger
}

func New(log handlerLogger, isShuttingDown *atomic.Bool, database Pinger) *Handler {
	return &Handler{
		log:            log.With(logger.NewField("handler", "healthcheck")),
		isShuttingDown: isShuttingDown,
		database:       database,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.database.Ping(ctx); err != nil {
		h.log.Warn("database is unreachable", logger.NewField("error", err))
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
