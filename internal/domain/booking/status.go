package booking

import "fmt"

// Status represents the tenant-facing state of a booking.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
)

var allStatuses = map[Status]struct{}{
	StatusPending:  {},
	StatusAccepted: {},
	StatusRejected: {},
}

// IsValid returns true if the status is a recognized booking status.
func (s Status) IsValid() bool {
	_, ok := allStatuses[s]
	return ok
}

// String returns the string representation of the status.
func (s Status) String() string { return string(s) }

// ParseStatus converts a string to a Status, returning an error if invalid.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}
	return status, nil
}

// ChainStatus represents the blockchain-confirmation state reported by
// the external chain-watcher process.
type ChainStatus string

const (
	ChainUnset     ChainStatus = "UNSET"
	ChainConfirmed ChainStatus = "CONFIRMED"
	ChainDenied    ChainStatus = "DENIED"
	ChainPending   ChainStatus = "PENDING"
	ChainError     ChainStatus = "ERROR"
)

var allChainStatuses = map[ChainStatus]struct{}{
	ChainUnset:     {},
	ChainConfirmed: {},
	ChainDenied:    {},
	ChainPending:   {},
	ChainError:     {},
}

// IsValid returns true if the status is a recognized blockchain status.
func (s ChainStatus) IsValid() bool {
	_, ok := allChainStatuses[s]
	return ok
}

// String returns the string representation of the status.
func (s ChainStatus) String() string { return string(s) }

// ParseChainStatus converts a string to a ChainStatus, returning an error
// if invalid.
func ParseChainStatus(s string) (ChainStatus, error) {
	status := ChainStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid blockchain status: %s", s)
	}
	return status, nil
}

// LiveStatuses are the booking statuses that count toward overlap
// conflicts.
var LiveStatuses = []Status{StatusPending, StatusAccepted}

// LiveChainStatuses are the blockchain statuses that count toward overlap
// conflicts. DENIED and ERROR bookings release their dates.
var LiveChainStatuses = []ChainStatus{ChainUnset, ChainPending, ChainConfirmed}
