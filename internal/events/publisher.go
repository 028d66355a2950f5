package events

import (
	"context"
	"time"

	"go.uber.org/zap"

	bookingDomain "github.com/bookbnb/service-booking/internal/domain/booking"
	"github.com/bookbnb/service-booking/pkg/kafka"
)

const eventSource = "service-booking"

// Publisher publishes booking lifecycle events to Kafka. Publishing is
// best effort: failures are logged and never surfaced to the request.
type Publisher struct {
	producer *kafka.Producer
	logger   *zap.Logger
}

// NewPublisher creates a Publisher on top of the given producer.
func NewPublisher(producer *kafka.Producer, logger *zap.Logger) *Publisher {
	return &Publisher{producer: producer, logger: logger}
}

// BookingCreated publishes a BookingCreatedEvent.
func (p *Publisher) BookingCreated(ctx context.Context, bk *bookingDomain.Booking) {
	evt := BookingCreatedEvent{
		BookingID:     bk.ID(),
		TenantID:      bk.TenantID(),
		PublicationID: bk.PublicationID(),
		TotalPrice:    bk.TotalPrice(),
		InitialDate:   bk.InitialDate().String(),
		FinalDate:     bk.FinalDate().String(),
		OccurredAt:    time.Now().UTC(),
	}
	p.publish(ctx, BookingCreated, evt)
}

// BookingStatusChanged publishes a BookingStatusChangedEvent.
func (p *Publisher) BookingStatusChanged(ctx context.Context, bk *bookingDomain.Booking) {
	evt := BookingStatusChangedEvent{
		BookingID:        bk.ID(),
		BookingStatus:    bk.Status().String(),
		BlockchainStatus: bk.ChainStatus().String(),
		OccurredAt:       time.Now().UTC(),
	}
	p.publish(ctx, BookingStatusChanged, evt)
}

func (p *Publisher) publish(ctx context.Context, eventType string, data interface{}) {
	cloudEvent, err := kafka.NewCloudEvent(eventSource, eventType, data)
	if err != nil {
		p.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	if err := p.producer.PublishEvent(ctx, TopicBookingEvents, cloudEvent); err != nil {
		p.logger.Error("failed to publish event",
			zap.String("topic", TopicBookingEvents),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
