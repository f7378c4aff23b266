package pending_bags

import (
	"context"
	"time"

	"recycling/pkg/logger"
)

// batchSize заказов за один проход. Остаток подберёт следующий тик.
const batchSize = 50

type PendingBags struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewPendingBags(log logger.Logger, service Service, interval time.Duration) *PendingBags {
	return &PendingBags{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (p *PendingBags) TTL() time.Duration {
	return p.interval
}

func (p *PendingBags) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	assigned, err := p.service.AssignPendingBags(ctxWithTimeout, batchSize)

	if assigned > 0 {
		p.log.With(
			logger.NewField("assigned_bags", assigned),
		).Info("pending bags matched")
	}

	return err
}

func (p *PendingBags) Info() string {
	return "pending bags matching"
}
