package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"roadways-api/internal/features/shipments/domain"
	"roadways-api/internal/features/shipments/ports"

	"github.com/google/uuid"
)

var (
	// ErrShipmentNotFound is returned when no shipment matches a lookup.
	// For the public tracking page this is an expected outcome, distinct
	// from a persistence failure.
	ErrShipmentNotFound = errors.New("shipment not found")
	// ErrDuplicateTrackingNumber is returned when a write would admit two
	// shipments with the same tracking number (case-insensitive).
	ErrDuplicateTrackingNumber = errors.New("duplicate tracking number")
	// ErrDeleteNotConfirmed is returned when a delete arrives without the
	// explicit confirmation signal. Deletion is immediate and unrecoverable.
	ErrDeleteNotConfirmed = errors.New("delete not confirmed")
)

// ShipmentService implements ports.Service over a shipment repository.
//
// The repository convention is read-modify-write over the whole collection,
// so the service serializes mutations with a mutex: tracking number
// generation and commit happen as one atomic step per instance, and every
// write re-validates tracking number uniqueness against the current
// collection. A stale pre-computed number from another session is therefore
// rejected at commit time instead of silently creating a duplicate.
type ShipmentService struct {
	repo ports.Repository
	mu   sync.Mutex

	now   func() time.Time
	newID func() string
}

// NewShipmentService creates a new ShipmentService.
func NewShipmentService(repo ports.Repository) *ShipmentService {
	return &ShipmentService{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Create appends a new shipment to the collection. When TrackingNumber is
// empty a fresh one is generated from the live collection; when pre-filled
// it is validated for uniqueness before the write is admitted.
func (s *ShipmentService) Create(ctx context.Context, in ports.CreateInput) (*domain.Shipment, error) {
	status := domain.StatusDispatched
	if in.Status != "" {
		parsed, err := domain.ParseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	shipments, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load shipments: %w", err)
	}

	number := in.TrackingNumber
	if number == "" {
		number = domain.NextTrackingNumber(shipments, s.now().Year())
	}
	if conflicts(shipments, number, "") {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateTrackingNumber, number)
	}

	shipment := domain.Shipment{
		ID:                s.newID(),
		TrackingNumber:    number,
		Sender:            in.Sender,
		Receiver:          in.Receiver,
		Origin:            in.Origin,
		Destination:       in.Destination,
		CurrentLocation:   in.CurrentLocation,
		Status:            status,
		LastUpdate:        s.now(),
		EstimatedDelivery: in.EstimatedDelivery,
		Description:       in.Description,
	}

	if err := s.repo.Replace(ctx, append(shipments, shipment)); err != nil {
		return nil, fmt.Errorf("service: failed to save shipments: %w", err)
	}

	return &shipment, nil
}

// Update applies a partial edit to an existing shipment. Any mutation
// refreshes LastUpdate; ID is immutable. An edited tracking number is
// re-validated against the rest of the collection.
func (s *ShipmentService) Update(ctx context.Context, id string, in ports.UpdateInput) (*domain.Shipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shipments, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load shipments: %w", err)
	}

	idx := indexByID(shipments, id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrShipmentNotFound, id)
	}

	shipment := shipments[idx]

	if in.TrackingNumber != nil {
		if conflicts(shipments, *in.TrackingNumber, id) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTrackingNumber, *in.TrackingNumber)
		}
		shipment.TrackingNumber = *in.TrackingNumber
	}
	if in.Status != nil {
		parsed, err := domain.ParseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		shipment.Status = parsed
	}
	if in.Sender != nil {
		shipment.Sender = *in.Sender
	}
	if in.Receiver != nil {
		shipment.Receiver = *in.Receiver
	}
	if in.Origin != nil {
		shipment.Origin = *in.Origin
	}
	if in.Destination != nil {
		shipment.Destination = *in.Destination
	}
	if in.CurrentLocation != nil {
		shipment.CurrentLocation = *in.CurrentLocation
	}
	if in.EstimatedDelivery != nil {
		shipment.EstimatedDelivery = *in.EstimatedDelivery
	}
	if in.Description != nil {
		shipment.Description = *in.Description
	}

	shipment.LastUpdate = s.now()
	shipments[idx] = shipment

	if err := s.repo.Replace(ctx, shipments); err != nil {
		return nil, fmt.Errorf("service: failed to save shipments: %w", err)
	}

	return &shipment, nil
}

// Delete removes a shipment permanently. The caller must pass an explicit
// confirmation signal; without it the operation is rejected.
func (s *ShipmentService) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrDeleteNotConfirmed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	shipments, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("service: failed to load shipments: %w", err)
	}

	idx := indexByID(shipments, id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrShipmentNotFound, id)
	}

	shipments = append(shipments[:idx], shipments[idx+1:]...)

	if err := s.repo.Replace(ctx, shipments); err != nil {
		return fmt.Errorf("service: failed to save shipments: %w", err)
	}

	return nil
}

// List returns the full shipment collection for the admin console.
func (s *ShipmentService) List(ctx context.Context) ([]domain.Shipment, error) {
	shipments, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load shipments: %w", err)
	}
	return shipments, nil
}

// GetByID resolves a shipment by its internal identifier.
func (s *ShipmentService) GetByID(ctx context.Context, id string) (*domain.Shipment, error) {
	shipments, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load shipments: %w", err)
	}

	idx := indexByID(shipments, id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrShipmentNotFound, id)
	}
	return &shipments[idx], nil
}

// NextTrackingNumber computes the next available tracking number from the
// live collection. Recomputed on every call, never cached; the result is
// advisory until commit, where uniqueness is enforced again.
func (s *ShipmentService) NextTrackingNumber(ctx context.Context) (string, error) {
	shipments, err := s.repo.List(ctx)
	if err != nil {
		return "", fmt.Errorf("service: failed to load shipments: %w", err)
	}
	return domain.NextTrackingNumber(shipments, s.now().Year()), nil
}

// Track resolves a customer-supplied tracking number to a single shipment
// and projects its status onto the progress steps. Lookup is idempotent,
// side-effect-free and case-insensitive; a miss returns ErrShipmentNotFound.
func (s *ShipmentService) Track(ctx context.Context, rawNumber string) (*ports.TrackingResult, error) {
	wanted := domain.NormalizeTrackingNumber(rawNumber)
	if wanted == "" {
		return nil, fmt.Errorf("%w: empty tracking number", ErrShipmentNotFound)
	}

	shipments, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load shipments: %w", err)
	}

	for _, shipment := range shipments {
		if domain.NormalizeTrackingNumber(shipment.TrackingNumber) != wanted {
			continue
		}
		steps, err := domain.Progress(shipment.Status)
		if err != nil {
			return nil, fmt.Errorf("service: corrupt shipment %s: %w", shipment.ID, err)
		}
		return &ports.TrackingResult{Shipment: shipment, Steps: steps}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrShipmentNotFound, wanted)
}

// conflicts reports whether number collides case-insensitively with any
// shipment other than excludeID.
func conflicts(shipments []domain.Shipment, number, excludeID string) bool {
	wanted := domain.NormalizeTrackingNumber(number)
	for _, s := range shipments {
		if s.ID == excludeID {
			continue
		}
		if domain.NormalizeTrackingNumber(s.TrackingNumber) == wanted {
			return true
		}
	}
	return false
}

func indexByID(shipments []domain.Shipment, id string) int {
	for i, s := range shipments {
		if s.ID == id {
			return i
		}
	}
	return -1
}
