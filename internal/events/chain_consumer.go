package events

import (
	"context"
	"encoding/json"
	"errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/bookbnb/service-booking/internal/application"
	"github.com/bookbnb/service-booking/pkg/domain"
	"github.com/bookbnb/service-booking/pkg/kafka"
)

// ChainEventConsumer listens for transaction-status updates from the
// external chain-watcher and applies them as lifecycle patches.
type ChainEventConsumer struct {
	consumer *kafka.Consumer
	service  *application.BookingService
	logger   *zap.Logger
}

// NewChainEventConsumer creates a new ChainEventConsumer.
func NewChainEventConsumer(
	brokers []string,
	groupID string,
	service *application.BookingService,
	logger *zap.Logger,
) *ChainEventConsumer {
	consumer := kafka.NewConsumer(brokers, groupID, TopicChainEvents, logger)
	return &ChainEventConsumer{
		consumer: consumer,
		service:  service,
		logger:   logger,
	}
}

// Start begins consuming chain events. Blocks until the context is
// cancelled.
func (c *ChainEventConsumer) Start(ctx context.Context) error {
	return c.consumer.Consume(ctx, c.handleMessage)
}

// Close closes the underlying Kafka consumer.
func (c *ChainEventConsumer) Close() error {
	return c.consumer.Close()
}

func (c *ChainEventConsumer) handleMessage(ctx context.Context, msg kafkago.Message) error {
	var cloudEvent kafka.CloudEvent
	if err := json.Unmarshal(msg.Value, &cloudEvent); err != nil {
		c.logger.Error("failed to parse cloud event from chain topic",
			zap.Error(err),
			zap.String("raw", string(msg.Value)),
		)
		return nil // Don't retry malformed messages
	}

	switch cloudEvent.Type {
	case ChainTransactionUpdated:
		return c.handleTransactionUpdated(ctx, cloudEvent)
	default:
		c.logger.Debug("ignoring unhandled chain event type",
			zap.String("type", cloudEvent.Type),
		)
		return nil
	}
}

func (c *ChainEventConsumer) handleTransactionUpdated(ctx context.Context, cloudEvent kafka.CloudEvent) error {
	var evt ChainTransactionUpdatedEvent
	if err := cloudEvent.ParseData(&evt); err != nil {
		c.logger.Error("failed to parse ChainTransactionUpdatedEvent data",
			zap.Error(err),
		)
		return nil // Don't retry malformed data
	}

	req := application.PatchBookingRequest{
		BlockchainStatus:          &evt.Status,
		BlockchainTransactionHash: evt.TransactionHash,
		BlockchainID:              evt.BlockchainID,
	}

	_, err := c.service.PatchBooking(ctx, evt.BookingID, req)
	if err != nil {
		var validationErr *domain.ValidationError
		var notFoundErr *domain.NotFoundError
		if errors.As(err, &validationErr) || errors.As(err, &notFoundErr) {
			// Nothing to retry: the event references a booking or status
			// this service will never accept.
			c.logger.Warn("dropping unprocessable chain event",
				zap.Int64("booking_id", evt.BookingID),
				zap.String("status", evt.Status),
				zap.Error(err),
			)
			return nil
		}
		c.logger.Error("failed to apply chain transaction update",
			zap.Int64("booking_id", evt.BookingID),
			zap.Error(err),
		)
		return err
	}

	c.logger.Info("chain transaction update applied",
		zap.Int64("booking_id", evt.BookingID),
		zap.String("status", evt.Status),
	)
	return nil
}
