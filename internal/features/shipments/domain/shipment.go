package domain

import (
	"errors"
	"fmt"
	"time"
)

// Status represents the current phase of a consignment.
// The four phases form a single linear progression with no branches.
type Status string

const (
	// StatusDispatched indicates the consignment has left the origin hub.
	StatusDispatched Status = "dispatched"
	// StatusInTransit indicates the consignment is moving between hubs.
	StatusInTransit Status = "in-transit"
	// StatusNearDestination indicates the consignment reached the destination hub.
	StatusNearDestination Status = "near-destination"
	// StatusDelivered indicates the consignment was handed to the receiver.
	StatusDelivered Status = "delivered"
)

// ErrInvalidStatus is returned when a status value is outside the closed set.
var ErrInvalidStatus = errors.New("invalid shipment status")

// statusOrder is the single source of truth for the phase progression.
// The progress projector and any transition validation both derive from it,
// so the "reached" computation and the ordering can never disagree.
var statusOrder = []Status{
	StatusDispatched,
	StatusInTransit,
	StatusNearDestination,
	StatusDelivered,
}

// Statuses returns the ordered phase sequence.
func Statuses() []Status {
	out := make([]Status, len(statusOrder))
	copy(out, statusOrder)
	return out
}

// Rank returns the position of the status in the phase progression,
// or ErrInvalidStatus for values outside the closed set.
func (s Status) Rank() (int, error) {
	for i, st := range statusOrder {
		if st == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, string(s))
}

// Valid reports whether the status belongs to the closed set.
func (s Status) Valid() bool {
	_, err := s.Rank()
	return err == nil
}

// ParseStatus validates a raw string against the closed status set.
// Unknown values are rejected rather than silently defaulted.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if _, err := s.Rank(); err != nil {
		return "", err
	}
	return s, nil
}

// Shipment represents one consignment in transit.
// The JSON field names are the persisted wire contract of the shipment
// collection and must not change.
type Shipment struct {
	// ID is the opaque internal identifier, assigned at creation and never
	// shown to customers.
	ID string `json:"id"`
	// TrackingNumber is the customer-facing identifier, format DR-<year>-<NNN>.
	TrackingNumber string `json:"trackingNumber"`
	// Sender is the consigning party.
	Sender string `json:"sender"`
	// Receiver is the party taking delivery.
	Receiver string `json:"receiver"`
	// Origin is the location the consignment departed from.
	Origin string `json:"origin"`
	// Destination is the location the consignment is bound for.
	Destination string `json:"destination"`
	// CurrentLocation is the most recently known physical position,
	// independent of Status.
	CurrentLocation string `json:"currentLocation"`
	// Status is the current phase of the consignment.
	Status Status `json:"status"`
	// LastUpdate is refreshed on every mutation, never set by the operator.
	LastUpdate time.Time `json:"lastUpdate"`
	// EstimatedDelivery is a free-text delivery estimate, e.g. "3-5 Business Days".
	EstimatedDelivery string `json:"estimatedDelivery"`
	// Description is the customer-visible narrative of the latest status.
	Description string `json:"description"`
}
