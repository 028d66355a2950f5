package booking

// FindConflict scans existing bookings of a publication for one whose
// date range intersects the candidate range. Every candidate is
// considered; a single live intersecting booking is enough to reject.
// Dead bookings never conflict, so a rejected or chain-denied booking's
// dates are immediately reusable.
func FindConflict(existing []*Booking, dates DateRange) *Booking {
	for _, b := range existing {
		if !b.IsLive() {
			continue
		}
		if b.Dates().Overlaps(dates) {
			return b
		}
	}
	return nil
}
