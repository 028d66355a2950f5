package booking

import (
	"time"

	"github.com/bookbnb/service-booking/pkg/domain"
)

// Booking is the aggregate root for the booking domain. A booking records
// a tenant renting a publication for a closed range of calendar days.
type Booking struct {
	id            int64
	tenantID      int64
	publicationID int64
	totalPrice    float64
	dates         DateRange
	bookingDate   time.Time

	status      Status
	chainStatus ChainStatus
	txHash      *string
	chainID     *int64
}

// NewBooking creates a booking with PENDING/UNSET statuses and the
// creation timestamp set to now. Identity is assigned by the store.
func NewBooking(tenantID, publicationID int64, totalPrice float64, initialDate, finalDate Date) (*Booking, error) {
	if tenantID <= 0 {
		return nil, domain.NewValidationError("tenant_id is required")
	}
	if publicationID <= 0 {
		return nil, domain.NewValidationError("publication_id is required")
	}
	if totalPrice < 0 {
		return nil, domain.NewValidationError("total_price must not be negative")
	}
	dates, err := NewDateRange(initialDate, finalDate)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	return &Booking{
		tenantID:      tenantID,
		publicationID: publicationID,
		totalPrice:    totalPrice,
		dates:         dates,
		bookingDate:   time.Now().UTC(),
		status:        StatusPending,
		chainStatus:   ChainUnset,
	}, nil
}

// ReconstructBooking rebuilds a Booking from persistence data (no validation).
func ReconstructBooking(
	id, tenantID, publicationID int64,
	totalPrice float64,
	initialDate, finalDate Date,
	bookingDate time.Time,
	status Status,
	chainStatus ChainStatus,
	txHash *string,
	chainID *int64,
) *Booking {
	return &Booking{
		id:            id,
		tenantID:      tenantID,
		publicationID: publicationID,
		totalPrice:    totalPrice,
		dates:         DateRange{Start: initialDate, End: finalDate},
		bookingDate:   bookingDate,
		status:        status,
		chainStatus:   chainStatus,
		txHash:        txHash,
		chainID:       chainID,
	}
}

// ID returns the store-assigned identifier, zero until persisted.
func (b *Booking) ID() int64 { return b.id }

// SetID assigns the store-generated identifier after insert.
func (b *Booking) SetID(id int64) { b.id = id }

// TenantID returns the renting party's identifier.
func (b *Booking) TenantID() int64 { return b.tenantID }

// PublicationID returns the rented listing's identifier.
func (b *Booking) PublicationID() int64 { return b.publicationID }

// TotalPrice returns the total price of the operation.
func (b *Booking) TotalPrice() float64 { return b.totalPrice }

// InitialDate returns the first rented day.
func (b *Booking) InitialDate() Date { return b.dates.Start }

// FinalDate returns the last rented day (inclusive).
func (b *Booking) FinalDate() Date { return b.dates.End }

// Dates returns the rented range.
func (b *Booking) Dates() DateRange { return b.dates }

// BookingDate returns the creation timestamp used for metrics bucketing.
func (b *Booking) BookingDate() time.Time { return b.bookingDate }

// Status returns the current booking status.
func (b *Booking) Status() Status { return b.status }

// ChainStatus returns the current blockchain status.
func (b *Booking) ChainStatus() ChainStatus { return b.chainStatus }

// TransactionHash returns the blockchain transaction hash, or nil.
func (b *Booking) TransactionHash() *string { return b.txHash }

// ChainID returns the blockchain-side identifier, or nil.
func (b *Booking) ChainID() *int64 { return b.chainID }

// IsLive reports whether this booking counts toward overlap conflicts.
// Rejected bookings and bookings denied or errored on chain are dead:
// their dates are free for reuse.
func (b *Booking) IsLive() bool {
	switch b.status {
	case StatusPending, StatusAccepted:
	default:
		return false
	}
	switch b.chainStatus {
	case ChainUnset, ChainPending, ChainConfirmed:
		return true
	}
	return false
}

// Patch is the set of lifecycle fields mutable after creation. Nil
// members are left untouched.
type Patch struct {
	Status          *Status
	ChainStatus     *ChainStatus
	TransactionHash *string
	ChainID         *int64
}

// IsEmpty reports whether the patch carries no changes.
func (p Patch) IsEmpty() bool {
	return p.Status == nil && p.ChainStatus == nil && p.TransactionHash == nil && p.ChainID == nil
}

// ApplyPatch mutates the lifecycle fields named by the patch. Transition
// legality is delegated to validateTransition.
func (b *Booking) ApplyPatch(p Patch) error {
	if p.Status != nil {
		if err := b.validateTransition(b.status, *p.Status); err != nil {
			return err
		}
		b.status = *p.Status
	}
	if p.ChainStatus != nil {
		b.chainStatus = *p.ChainStatus
	}
	if p.TransactionHash != nil {
		b.txHash = p.TransactionHash
	}
	if p.ChainID != nil {
		b.chainID = p.ChainID
	}
	return nil
}

// validateTransition is the single hook for booking-status transition
// rules. Any status may currently follow any other: a rejected booking
// can be reopened, which re-enters it into overlap checks. Tighten here
// if product intent changes.
func (b *Booking) validateTransition(from, to Status) error {
	_ = from
	_ = to
	return nil
}
