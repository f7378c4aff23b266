package voucher

import (
	"errors"

	"recycling/internal/entities"
)

var (
	ErrInvalidAmount   = errors.New("amount must be greater than 0")
	ErrAmountTooSmall  = errors.New("amount is below the voucher minimum")
	ErrInvalidCode     = errors.New("invalid voucher code")
	ErrInvalidBranchID = errors.New("invalid branch id")

	ErrActiveVoucherExists = errors.New("you already have an active voucher")
	ErrVoucherNotFound     = errors.New("voucher not found")
	ErrVoucherAlreadyUsed  = errors.New("voucher has already been used")
	ErrVoucherExpired      = errors.New("voucher has expired")
	ErrCodeCollision       = errors.New("could not generate a unique voucher code")
)

// ActiveVoucherError возвращается из Issue вместе с действующим ваучером владельца.
type ActiveVoucherError struct {
	Voucher entities.Voucher
}

func (e *ActiveVoucherError) Error() string {
	return ErrActiveVoucherExists.Error()
}

func (e *ActiveVoucherError) Unwrap() error {
	return ErrActiveVoucherExists
}
