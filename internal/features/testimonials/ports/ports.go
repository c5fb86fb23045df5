package ports

import (
	"context"

	"roadways-api/internal/features/testimonials/domain"
)

// TestimonialService defines the primary port for testimonial operations.
type TestimonialService interface {
	// ListApproved returns testimonials visible on the public site.
	ListApproved(ctx context.Context) ([]domain.Testimonial, error)
	// ListAll returns every testimonial for the admin console.
	ListAll(ctx context.Context) ([]domain.Testimonial, error)
	// Submit records a new visitor testimonial, pending approval.
	Submit(ctx context.Context, name, company, role, quote string, rating int) (*domain.Testimonial, error)
	// SetApproval toggles a testimonial's public visibility.
	SetApproval(ctx context.Context, id string, approved bool) error
	// Delete removes a testimonial permanently after explicit confirmation.
	Delete(ctx context.Context, id string, confirmed bool) error
}

// TestimonialRepository defines the secondary port for testimonial storage.
type TestimonialRepository interface {
	List(ctx context.Context) ([]domain.Testimonial, error)
	Replace(ctx context.Context, testimonials []domain.Testimonial) error
}
