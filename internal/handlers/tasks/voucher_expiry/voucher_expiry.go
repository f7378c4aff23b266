package voucher_expiry

import (
	"context"
	"time"

	"recycling/pkg/logger"
)

const batchSize = 100

type VoucherExpiry struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewVoucherExpiry(log logger.Logger, service Service, interval time.Duration) *VoucherExpiry {
	return &VoucherExpiry{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (v *VoucherExpiry) TTL() time.Duration {
	return v.interval
}

func (v *VoucherExpiry) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, v.interval)
	defer cancel()

	notified, err := v.service.NotifyExpired(ctxWithTimeout, batchSize)

	if notified > 0 {
		v.log.With(
			logger.NewField("expired_vouchers", notified),
		).Info("voucher expiry notified")
	}

	return err
}

func (v *VoucherExpiry) Info() string {
	return "voucher expiry"
}
