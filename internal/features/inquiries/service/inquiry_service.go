package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"roadways-api/internal/features/inquiries/domain"
	"roadways-api/internal/features/inquiries/ports"

	"github.com/google/uuid"
)

var (
	// ErrInquiryNotFound is returned when no inquiry matches the id.
	ErrInquiryNotFound = errors.New("inquiry not found")
	// ErrDeleteNotConfirmed is returned when a delete arrives without the
	// explicit confirmation signal.
	ErrDeleteNotConfirmed = errors.New("delete not confirmed")
)

// InquiryServiceImpl implements ports.InquiryService.
type InquiryServiceImpl struct {
	repo ports.InquiryRepository
	mu   sync.Mutex

	now func() time.Time
}

// NewInquiryService creates a new InquiryServiceImpl.
func NewInquiryService(repo ports.InquiryRepository) *InquiryServiceImpl {
	return &InquiryServiceImpl{
		repo: repo,
		now:  time.Now,
	}
}

// Submit records a new inquiry from the public contact form.
func (s *InquiryServiceImpl) Submit(ctx context.Context, name, phone, service, notes string) (*domain.Inquiry, error) {
	if name == "" || phone == "" {
		return nil, domain.ErrMissingContact
	}

	inquiry := domain.Inquiry{
		ID:      uuid.NewString(),
		Name:    name,
		Phone:   phone,
		Service: service,
		Notes:   notes,
		Date:    s.now(),
		Status:  domain.InquiryStatusNew,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inquiries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load inquiries: %w", err)
	}

	if err := s.repo.Replace(ctx, append(inquiries, inquiry)); err != nil {
		return nil, fmt.Errorf("service: failed to save inquiries: %w", err)
	}
	return &inquiry, nil
}

// List returns every inquiry for the admin inbox.
func (s *InquiryServiceImpl) List(ctx context.Context) ([]domain.Inquiry, error) {
	inquiries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load inquiries: %w", err)
	}
	return inquiries, nil
}

// SetStatus updates an inquiry's triage state. Unknown states are rejected.
func (s *InquiryServiceImpl) SetStatus(ctx context.Context, id string, status string) error {
	parsed, err := domain.ParseInquiryStatus(status)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inquiries, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("service: failed to load inquiries: %w", err)
	}

	for i := range inquiries {
		if inquiries[i].ID != id {
			continue
		}
		inquiries[i].Status = parsed
		if err := s.repo.Replace(ctx, inquiries); err != nil {
			return fmt.Errorf("service: failed to save inquiries: %w", err)
		}
		return nil
	}

	return fmt.Errorf("%w: %s", ErrInquiryNotFound, id)
}

// Delete removes an inquiry permanently after explicit confirmation.
func (s *InquiryServiceImpl) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrDeleteNotConfirmed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inquiries, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("service: failed to load inquiries: %w", err)
	}

	for i := range inquiries {
		if inquiries[i].ID != id {
			continue
		}
		inquiries = append(inquiries[:i], inquiries[i+1:]...)
		if err := s.repo.Replace(ctx, inquiries); err != nil {
			return fmt.Errorf("service: failed to save inquiries: %w", err)
		}
		return nil
	}

	return fmt.Errorf("%w: %s", ErrInquiryNotFound, id)
}
