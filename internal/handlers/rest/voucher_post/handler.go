package voucher_post

import (
	"errors"
	"net/http"

	"recycling/internal/generated/dto"
	"recycling/internal/handlers/rest/presenter"
	"recycling/internal/handlers/rest/respond"
	"recycling/internal/pkg/validation"
	"recycling/internal/service/ledger"
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
	identity, ok := respond.Identity(r)
	if !ok {
		respond.Error(w, h.log, http.StatusUnauthorized, "missing bearer token")
		return
	}

	var request dto.VoucherCreateRequest
	if err := validation.DecodeJSON(r.Body, &request); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	issued, err := h.service.Issue(r.Context(), identity.Holder, request.Amount)
	if err != nil {
		var activeErr *voucher.ActiveVoucherError
		switch {
		case errors.As(err, &activeErr):
			respond.JSON(w, h.log, http.StatusConflict, dto.ActiveVoucherConflict{
				Error:   activeErr.Error(),
				Voucher: presenter.Voucher(&activeErr.Voucher),
			})
		case errors.Is(err, voucher.ErrAmountTooSmall):
			// текст содержит минимальную сумму для роли владельца
			respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, voucher.ErrInvalidAmount),
			errors.Is(err, ledger.ErrInsufficientRewards):
			respond.Error(w, h.log, http.StatusBadRequest, respond.Message(err))
		case errors.Is(err, ledger.ErrHolderNotFound):
			respond.Error(w, h.log, http.StatusNotFound, respond.Message(err))
		default:
			respond.InternalError(w, h.log, r, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.VoucherIssueResponse{
		Voucher: presenter.Voucher(&issued.Voucher),
		Balance: presenter.Balance(&issued.Balance),
	})
}
