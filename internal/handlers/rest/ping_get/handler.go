package ping_get

import (
	"net/http"
	"time"

	"github.com/AlekSi/pointer"
	"recycling/internal/generated/dto"
	"recycling/internal/handlers/rest/respond"
)

const (
	pong        = "pong"
	serviceName = "recycling"
)

type Handler struct {
	log handlerLogger
	now func() time.Time
}

func New(log handlerLogger) *Handler {
	return NewWithClock(log, time.Now)
}

// NewWithClock нужен тестам, чтобы зафиксировать время ответа.
func NewWithClock(log handlerLogger, now func() time.Time) *Handler {
	return &Handler{
		log: log.With(),
		now: now,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, h.log, http.StatusOK, dto.PingResponse{
		Message: pointer.ToString(pong),
		Service: pointer.ToString(serviceName),
		Time:    pointer.ToTime(h.now().UTC()),
	})
}
