package kafkafeed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/example/customer-page-service/internal/domain"
)

const (
	handlerTimeout = 5 * time.Second
	retryDelay     = time.Second
)

// Consumer reads order messages from a Kafka topic. A message that fails with
// domain.ErrValidation is committed and skipped; any other failure is retried
// before the offset moves on.
type Consumer struct {
	Brokers []string
	Topic   string
	GroupID string
	Logger  *slog.Logger
	// RetryDelay defaults to one second.
	RetryDelay time.Duration
}

func (c *Consumer) Subscribe(ctx context.Context, handler func(ctx context.Context, raw []byte) error) error {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  c.Brokers,
		Topic:    c.Topic,
		GroupID:  c.GroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	c.Logger.Info("subscribed to order feed", "feed", "kafka", "topic", c.Topic)
	go c.consume(ctx, r, handler)
	return nil
}

func (c *Consumer) consume(ctx context.Context, r *kafka.Reader, handler func(ctx context.Context, raw []byte) error) {
	defer r.Close()
	for {
		m, err := r.FetchMessage(ctx)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				c.Logger.Error("kafka fetch failed", "error", err)
			}
			return
		}

		if !c.handle(ctx, m, handler) {
			return
		}
		if err := r.CommitMessages(ctx, m); err != nil {
			c.Logger.Error("kafka commit failed", "offset", m.Offset, "error", err)
		}
	}
}

// handle reports false when ctx is done before the message was handled.
func (c *Consumer) handle(ctx context.Context, m kafka.Message, handler func(ctx context.Context, raw []byte) error) bool {
	for {
		hCtx, cancel := context.WithTimeout(ctx, handlerTimeout)
		err := handler(hCtx, m.Value)
		cancel()
		if err == nil {
			return true
		}
		if errors.Is(err, domain.ErrValidation) {
			c.Logger.Warn("order message rejected", "topic", m.Topic, "partition", m.Partition, "offset", m.Offset, "error", err)
			return true
		}
		c.Logger.Error("order message failed, retrying", "offset", m.Offset, "error", err)
		select {
		case <-ctx.Done():
			return false
		case <-time.After(c.retryDelay()):
		}
	}
}

func (c *Consumer) retryDelay() time.Duration {
	if c.RetryDelay > 0 {
		return c.RetryDelay
	}
	return retryDelay
}

var _ domain.MessageSubscriber = (*Consumer)(nil)

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireAll,
			Async:        false,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, key []byte, value []byte) error {
	if err := p.writer.WriteMessages(ctx, kafka.Message{Key: key, Value: value}); err != nil {
		return fmt.Errorf("kafka write: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
