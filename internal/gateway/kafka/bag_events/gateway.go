package bag_events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"recycling/internal/entities"
	retrierconfig "recycling/pkg/retrier"
	"recycling/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 1 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type BagEventsGateway struct {
	producer producer
	retrier  retrier
	topic    string
	now      func() time.Time
}

func New(producer producer, topic string) *BagEventsGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return newGateway(producer, backoff_adapter.New(retryConfig), topic, time.Now)
}

func newGateway(producer producer, retrier retrier, topic string, now func() time.Time) *BagEventsGateway {
	return &BagEventsGateway{
		producer: producer,
		retrier:  retrier,
		topic:    topic,
		now:      now,
	}
}

// PublishBagStatus отправляет событие смены статуса. Ключ сообщения это id заказа,
// поэтому события одного заказа попадают в одну партицию и читаются по порядку.
func (g *BagEventsGateway) PublishBagStatus(ctx context.Context, bagID int64, status entities.BagStatus) error {
	event := entities.BagStatusEvent{
		EventID:    uuid.NewString(),
		BagID:      bagID,
		Status:     status,
		OccurredAt: g.now().UTC(),
	}

	payload, err := json.Marshal(toMessage(event))
	if err != nil {
		return fmt.Errorf("marshal bag status event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(bagID, 10)),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_id"), Value: []byte(event.EventID)},
		},
	}

	err = g.executeWithMetrics(ctx, func(context.Context) error {
		_, _, err := g.producer.SendMessage(msg)
		return err
	})
	if err != nil {
		return fmt.Errorf("gateway bag events, publish bag %d %s: %w", bagID, status, err)
	}
	return nil
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, sarama.ErrOutOfBrokers),
		errors.Is(err, sarama.ErrNotLeaderForPartition),
		errors.Is(err, sarama.ErrLeaderNotAvailable),
		errors.Is(err, sarama.ErrRequestTimedOut),
		errors.Is(err, sarama.ErrNotEnoughReplicas),
		errors.Is(err, sarama.ErrNotEnoughReplicasAfterAppend):
		return true
	default:
		return false
	}
}

func (g *BagEventsGateway) executeWithMetrics(ctx context.Context, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	result := resultLabel(err)
	GatewayPublishDuration.WithLabelValues(g.topic, result).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(g.topic, result).Inc()
	}

	return err
}

func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}
	var kErr sarama.KError
	if errors.As(err, &kErr) {
		return kErr.Error()
	}
	return "error"
}
