package voucher_use_post

import (
	"errors"
	"net/http"

	"recycling/internal/generated/dto"
	"recycling/internal/handlers/rest/presenter"
	"recycling/internal/handlers/rest/respond"
	"recycling/internal/pkg/validation"
	"recycling/internal/service/store"
	"recycling/internal/service/voucher"
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
	var request dto.VoucherUseRequest
	if err := validation.DecodeJSON(r.Body, &request); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	redemption, err := h.service.Use(r.Context(), request.Code, request.BranchID)
	if err != nil {
		switch {
		case errors.Is(err, voucher.ErrInvalidCode),
			errors.Is(err, voucher.ErrInvalidBranchID),
			errors.Is(err, voucher.ErrVoucherAlreadyUsed),
			errors.Is(err, voucher.ErrVoucherExpired):
			respond.Error(w, h.log, http.StatusBadRequest, respond.Message(err))
		case errors.Is(err, voucher.ErrVoucherNotFound),
			errors.Is(err, store.ErrBranchNotFound):
			respond.Error(w, h.log, http.StatusNotFound, respond.Message(err))
		default:
			respond.InternalError(w, h.log, r, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.VoucherUseResponse{
		Voucher: presenter.Voucher(&redemption.Voucher),
		Branch:  presenter.Branch(&redemption.Branch),
	})
}
