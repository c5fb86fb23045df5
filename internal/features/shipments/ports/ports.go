package ports

import (
	"context"

	"roadways-api/internal/features/shipments/domain"
)

// CreateInput carries the operator-supplied fields for a new shipment.
// TrackingNumber may be pre-filled from NextTrackingNumber; when empty the
// service generates one atomically at commit time. Status defaults to
// dispatched when empty.
type CreateInput struct {
	TrackingNumber    string
	Sender            string
	Receiver          string
	Origin            string
	Destination       string
	CurrentLocation   string
	Status            string
	EstimatedDelivery string
	Description       string
}

// UpdateInput carries a partial edit of an existing shipment. Nil fields are
// left untouched. LastUpdate is never settable; the service refreshes it on
// every mutation.
type UpdateInput struct {
	TrackingNumber    *string
	Sender            *string
	Receiver          *string
	Origin            *string
	Destination       *string
	CurrentLocation   *string
	Status            *string
	EstimatedDelivery *string
	Description       *string
}

// TrackingResult is a shipment resolved for the public tracking page,
// with its status projected onto the 4-step progress sequence.
type TrackingResult struct {
	Shipment domain.Shipment
	Steps    []domain.ProgressStep
}

// Service defines the primary port for shipment operations.
type Service interface {
	Create(ctx context.Context, in CreateInput) (*domain.Shipment, error)
	Update(ctx context.Context, id string, in UpdateInput) (*domain.Shipment, error)
	Delete(ctx context.Context, id string, confirmed bool) error
	List(ctx context.Context) ([]domain.Shipment, error)
	GetByID(ctx context.Context, id string) (*domain.Shipment, error)
	NextTrackingNumber(ctx context.Context) (string, error)
	Track(ctx context.Context, rawNumber string) (*TrackingResult, error)
}

// Repository defines the secondary port for shipment storage. The collection
// persists as a single serialized array replaced wholesale on every mutation.
type Repository interface {
	List(ctx context.Context) ([]domain.Shipment, error)
	Replace(ctx context.Context, shipments []domain.Shipment) error
}
