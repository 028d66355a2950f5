package events

import "time"

// Topics this service touches.
const (
	TopicBookingEvents = "booking.events"
	TopicChainEvents   = "blockchain.events"
)

// Event types.
const (
	BookingCreated          = "booking.created"
	BookingStatusChanged    = "booking.status_changed"
	ChainTransactionUpdated = "chain.transaction_updated"
)

// BookingCreatedEvent announces a newly persisted booking.
type BookingCreatedEvent struct {
	BookingID     int64     `json:"booking_id"`
	TenantID      int64     `json:"tenant_id"`
	PublicationID int64     `json:"publication_id"`
	TotalPrice    float64   `json:"total_price"`
	InitialDate   string    `json:"initial_date"`
	FinalDate     string    `json:"final_date"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// BookingStatusChangedEvent announces a lifecycle change.
type BookingStatusChangedEvent struct {
	BookingID        int64     `json:"booking_id"`
	BookingStatus    string    `json:"booking_status"`
	BlockchainStatus string    `json:"blockchain_status"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// ChainTransactionUpdatedEvent is published by the external chain-watcher
// when a booking's transaction changes state on chain.
type ChainTransactionUpdatedEvent struct {
	BookingID       int64     `json:"booking_id"`
	Status          string    `json:"status"`
	TransactionHash *string   `json:"transaction_hash"`
	BlockchainID    *int64    `json:"blockchain_id"`
	OccurredAt      time.Time `json:"occurred_at"`
}
