package kafka

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"recycling/pkg/logger"
	retrierconfig "recycling/pkg/retrier"
	"recycling/pkg/retrier/backoff_adapter"
)

var ErrTopicNotFound = errors.New("kafka topic not found")

// Брокер может подняться раньше, чем создан топик, поэтому отсутствие
// топика тоже повторяем.
func connectRetryConfig() retrierconfig.Config {
	return retrierconfig.Config{
		InitialInterval: time.Second,
		MaxInterval:     30 * time.Second,
		MaxElapsedTime:  2 * time.Minute,
		Randomization:   0.5,
		Multiplier:      2,
	}
}

// Brokers разбирает список брокеров из строки вида "host1:9092,host2:9092".
func Brokers(raw string) []string {
	parts := strings.Split(raw, ",")
	brokers := make([]string, 0, len(parts))
	for _, part := range parts {
		if broker := strings.TrimSpace(part); broker != "" {
			brokers = append(brokers, broker)
		}
	}
	return brokers
}

func ensureTopic(available []string, topic string) error {
	if topic == "" || slices.Contains(available, topic) {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrTopicNotFound, topic)
}

func pingKafka(ctx context.Context, log logger.Logger, brokers []string, topic string, cfg *sarama.Config) error {
	retrier := backoff_adapter.New(connectRetryConfig())

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.Info("attempting Kafka connection", logger.NewField("attempt", attempt))

		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.Error("failed to close Kafka probe client", logger.NewField("error", err))
			}
		}()

		topics, err := client.Topics()
		if err != nil {
			return err
		}
		return ensureTopic(topics, topic)
	})
	if err != nil {
		log.Error("Kafka connection failed after retries",
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		)
		return fmt.Errorf("failed to connect to Kafka: %w", err)
	}

	log.Info("Kafka connection established", logger.NewField("attempts", attempt))
	return nil
}
