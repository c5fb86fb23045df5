package ports

import (
	"context"

	"roadways-api/internal/features/inquiries/domain"
)

// InquiryService defines the primary port for inquiry operations.
type InquiryService interface {
	// Submit records a new inquiry from the public contact form.
	Submit(ctx context.Context, name, phone, service, notes string) (*domain.Inquiry, error)
	// List returns every inquiry for the admin inbox.
	List(ctx context.Context) ([]domain.Inquiry, error)
	// SetStatus updates an inquiry's triage state.
	SetStatus(ctx context.Context, id string, status string) error
	// Delete removes an inquiry permanently after explicit confirmation.
	Delete(ctx context.Context, id string, confirmed bool) error
}

// InquiryRepository defines the secondary port for inquiry storage.
type InquiryRepository interface {
	List(ctx context.Context) ([]domain.Inquiry, error)
	Replace(ctx context.Context, inquiries []domain.Inquiry) error
}
