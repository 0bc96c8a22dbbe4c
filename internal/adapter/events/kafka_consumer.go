package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"smartlink/internal/core/domain"
	"smartlink/internal/core/port"
)

// KafkaConsumer implements port.EventConsumer on a consumer group. Offsets
// are committed explicitly once deliveries are acknowledged.
type KafkaConsumer struct {
	reader  *kafka.Reader
	offsets *offsetTracker
	logger  *slog.Logger
}

func NewKafkaConsumer(brokers []string, groupID, topic string, logger *slog.Logger) (*KafkaConsumer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka consumer requires at least one broker")
	}
	if groupID == "" {
		return nil, fmt.Errorf("kafka consumer requires group id")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka consumer requires a topic")
	}
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		GroupID:        groupID,
		Topic:          topic,
		MinBytes:       1,
		MaxBytes:       10e6,
		MaxWait:        500 * time.Millisecond,
		CommitInterval: 0, // synchronous commits
		StartOffset:    kafka.FirstOffset,
	})
	return &KafkaConsumer{reader: reader, offsets: newOffsetTracker(), logger: logger}, nil
}

// Fetch returns the next decodable envelope. Undecodable messages are
// logged and committed so they do not block the partition.
func (c *KafkaConsumer) Fetch(ctx context.Context) (port.Delivery, error) {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			return port.Delivery{}, err
		}
		c.offsets.fetched(msg.Partition, msg.Offset)

		var env domain.Envelope
		if err = json.Unmarshal(msg.Value, &env); err != nil || env.ExternalEventKey == "" {
			c.logger.Error("dropping undecodable postback message",
				slog.Int("partition", msg.Partition),
				slog.Int64("offset", msg.Offset),
				slog.String("key", string(msg.Key)),
				slog.Any("error", err))
			if err = c.ack(ctx, msg); err != nil {
				return port.Delivery{}, err
			}
			continue
		}

		return port.Delivery{
			Envelope: env,
			Ack:      func(ctx context.Context) error { return c.ack(ctx, msg) },
		}, nil
	}
}

func (c *KafkaConsumer) ack(ctx context.Context, msg kafka.Message) error {
	offset, ok := c.offsets.acked(msg.Partition, msg.Offset)
	if !ok {
		return nil
	}
	commit := kafka.Message{Topic: msg.Topic, Partition: msg.Partition, Offset: offset}
	if err := c.reader.CommitMessages(ctx, commit); err != nil {
		return fmt.Errorf("commit partition %d offset %d: %w", msg.Partition, offset, err)
	}
	return nil
}

func (c *KafkaConsumer) Close() error {
	return c.reader.Close()
}
