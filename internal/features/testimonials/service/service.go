package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"roadways-api/internal/features/testimonials/domain"
	"roadways-api/internal/features/testimonials/ports"

	"github.com/google/uuid"
)

var (
	// ErrTestimonialNotFound is returned when no testimonial matches the id.
	ErrTestimonialNotFound = errors.New("testimonial not found")
	// ErrDeleteNotConfirmed is returned when a delete arrives without the
	// explicit confirmation signal.
	ErrDeleteNotConfirmed = errors.New("delete not confirmed")
)

// TestimonialServiceImpl implements ports.TestimonialService.
type TestimonialServiceImpl struct {
	repo ports.TestimonialRepository
	mu   sync.Mutex
}

// NewTestimonialService creates a new TestimonialServiceImpl.
func NewTestimonialService(repo ports.TestimonialRepository) *TestimonialServiceImpl {
	return &TestimonialServiceImpl{
		repo: repo,
	}
}

// ListApproved returns the testimonials visible on the public site.
func (s *TestimonialServiceImpl) ListApproved(ctx context.Context) ([]domain.Testimonial, error) {
	testimonials, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load testimonials: %w", err)
	}

	approved := make([]domain.Testimonial, 0, len(testimonials))
	for _, t := range testimonials {
		if t.Approved {
			approved = append(approved, t)
		}
	}
	return approved, nil
}

// ListAll returns every testimonial for the admin console.
func (s *TestimonialServiceImpl) ListAll(ctx context.Context) ([]domain.Testimonial, error) {
	testimonials, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load testimonials: %w", err)
	}
	return testimonials, nil
}

// Submit records a new visitor testimonial. It stays hidden until the
// operator approves it.
func (s *TestimonialServiceImpl) Submit(ctx context.Context, name, company, role, quote string, rating int) (*domain.Testimonial, error) {
	testimonial, err := domain.NewTestimonial(uuid.NewString(), name, company, role, quote, rating)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	testimonials, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load testimonials: %w", err)
	}

	if err := s.repo.Replace(ctx, append(testimonials, *testimonial)); err != nil {
		return nil, fmt.Errorf("service: failed to save testimonials: %w", err)
	}
	return testimonial, nil
}

// SetApproval toggles a testimonial's public visibility.
func (s *TestimonialServiceImpl) SetApproval(ctx context.Context, id string, approved bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	testimonials, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("service: failed to load testimonials: %w", err)
	}

	for i := range testimonials {
		if testimonials[i].ID != id {
			continue
		}
		testimonials[i].Approved = approved
		if err := s.repo.Replace(ctx, testimonials); err != nil {
			return fmt.Errorf("service: failed to save testimonials: %w", err)
		}
		return nil
	}

	return fmt.Errorf("%w: %s", ErrTestimonialNotFound, id)
}

// Delete removes a testimonial permanently after explicit confirmation.
func (s *TestimonialServiceImpl) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrDeleteNotConfirmed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	testimonials, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("service: failed to load testimonials: %w", err)
	}

	for i := range testimonials {
		if testimonials[i].ID != id {
			continue
		}
		testimonials = append(testimonials[:i], testimonials[i+1:]...)
		if err := s.repo.Replace(ctx, testimonials); err != nil {
			return fmt.Errorf("service: failed to save testimonials: %w", err)
		}
		return nil
	}

	return fmt.Errorf("%w: %s", ErrTestimonialNotFound, id)
}
