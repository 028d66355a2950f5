package kafka

import (
	"context"
	"errors"
	"io"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// handlerRetryDelay is the pause between attempts at a failing message.
const handlerRetryDelay = 5 * time.Second

// MessageHandler processes one Kafka message. Returning an error keeps
// the message uncommitted; the consumer retries it before moving on.
type MessageHandler func(ctx context.Context, msg kafkago.Message) error

// Consumer reads a topic as part of a consumer group.
type Consumer struct {
	reader *kafkago.Reader
	logger *zap.Logger
}

// NewConsumer creates a group consumer for the given topic.
func NewConsumer(brokers []string, groupID, topic string, logger *zap.Logger) *Consumer {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     brokers,
		GroupID:     groupID,
		Topic:       topic,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafkago.FirstOffset,
		Logger:      kafkago.LoggerFunc(func(string, ...interface{}) {}),
		ErrorLogger: kafkago.LoggerFunc(func(msg string, args ...interface{}) {
			logger.Sugar().Errorf("kafka consumer: "+msg, args...)
		}),
	})
	return &Consumer{reader: reader, logger: logger}
}

// Consume fetches messages and passes them to the handler, committing
// each message only after the handler succeeds. A failing handler is
// retried on the same message with a delay, so the group offset never
// advances past an unprocessed message. Blocks until the context is
// cancelled or the reader is closed.
func (c *Consumer) Consume(ctx context.Context, handler MessageHandler) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return ctx.Err()
			}
			return err
		}

		err = retryUntilDone(ctx, handlerRetryDelay, func(ctx context.Context) error {
			return handler(ctx, msg)
		}, func(err error) {
			c.logger.Error("message handler failed, will retry",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
		})
		if err != nil {
			return err
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Error("failed to commit message",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
		}
	}
}

// retryUntilDone runs attempt until it succeeds or the context ends,
// waiting delay between failures. Each failure is reported to onFailure.
func retryUntilDone(ctx context.Context, delay time.Duration, attempt func(context.Context) error, onFailure func(error)) error {
	for {
		err := attempt(ctx)
		if err == nil {
			return nil
		}
		onFailure(err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}

// Close closes the underlying reader.
func (c *Consumer) Close() error {
	return c.reader.Close()
}
