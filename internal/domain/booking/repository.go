package booking

import (
	"context"
)

// DayRevenue is one aggregated revenue bucket: the calendar day bookings
// were created on and the summed total price of qualifying bookings.
type DayRevenue struct {
	Day   Date
	Value float64
}

// Repository defines the persistence contract for bookings.
type Repository interface {
	// Create persists a new booking, enforcing the per-publication
	// no-overlap invariant against live bookings inside a single
	// transaction. Returns PreconditionFailedError on conflict. On
	// success the booking carries its store-assigned id.
	Create(ctx context.Context, b *Booking) error

	// FindByID retrieves a booking, or NotFoundError.
	FindByID(ctx context.Context, id int64) (*Booking, error)

	// List retrieves bookings matching the conjunction of the given
	// conditions. An empty condition list matches everything.
	List(ctx context.Context, conditions []Condition) ([]*Booking, error)

	// UpdateFields applies a partial lifecycle update, leaving fields
	// absent from the patch untouched. Returns NotFoundError for an
	// unknown id and the updated booking on success.
	UpdateFields(ctx context.Context, id int64, patch Patch) (*Booking, error)

	// RevenueByDay sums total_price of ACCEPTED+CONFIRMED bookings
	// grouped by the calendar day of booking_date, restricted to the
	// closed window [start, end]. Days with no revenue are absent.
	RevenueByDay(ctx context.Context, start, end Date) ([]DayRevenue, error)
}
