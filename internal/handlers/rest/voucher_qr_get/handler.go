package voucher_qr_get

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"recycling/internal/handlers/rest/respond"
	"recycling/internal/service/voucher"
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

	png, err := h.service.QRCode(r.Context(), identity.Holder, mux.Vars(r)["code"])
	if err != nil {
		switch {
		case errors.Is(err, voucher.ErrInvalidCode):
			respond.Error(w, h.log, http.StatusBadRequest, respond.Message(err))
		case errors.Is(err, voucher.ErrVoucherNotFound):
			respond.Error(w, h.log, http.StatusNotFound, respond.Message(err))
		default:
			respond.InternalError(w, h.log, r, err)
		}
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(png); err != nil {
		h.log.Warn("write qr image", logger.NewField("error", err))
	}
}
