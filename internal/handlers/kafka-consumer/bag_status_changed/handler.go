package bag_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"recycling/internal/entities"
	"recycling/internal/service/dispatch"
	"recycling/pkg/logger"
)

type bagStatusEvent struct {
	EventID    string    `json:"event_id"`
	BagID      int64     `json:"bag_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Handler struct {
	dispatchService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, dispatchService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		dispatchService:          dispatchService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("bag.status.changed: claim closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// ребаланс или остановка consumer group
			h.log.Info("bag.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если ConsumeClaim нужно прервать без коммита оффсета:
// сообщение перечитается после переподключения.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event bagStatusEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.Error("bag.status.changed handler received bad message",
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		)
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("event_id", event.EventID),
		logger.NewField("bag", event.BagID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("bag.status.changed processing")

	bag, err := h.dispatchService.ProcessBagStatusChange(ctx, entities.BagStatusEvent{
		EventID:    event.EventID,
		BagID:      event.BagID,
		Status:     entities.BagStatus(event.Status),
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.Warn("bag.status.changed handler context cancelled, message will be reprocessed",
				logger.NewField("error", err),
			)
			return true

		case errors.Is(err, dispatch.ErrStatusMismatch):
			msgLog.Warn("bag.status.changed handler skipped stale event",
				logger.NewField("error", err),
			)

		case errors.Is(err, dispatch.ErrInvalidEvent):
			msgLog.Warn("bag.status.changed handler received invalid event",
				logger.NewField("error", err),
			)

		default:
			msgLog.Error("bag.status.changed handler failed to process bag",
				logger.NewField("error", err),
			)
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("bag.status.changed: processed",
		logger.NewField("current_status", bag.Status.String()),
	)
	sess.MarkMessage(message, "")
	return false
}
