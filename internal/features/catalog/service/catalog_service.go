package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"roadways-api/internal/features/catalog/domain"
	"roadways-api/internal/features/catalog/ports"

	"github.com/google/uuid"
)

var (
	// ErrOfferingNotFound is returned when no offering matches the id.
	ErrOfferingNotFound = errors.New("offering not found")
	// ErrDeleteNotConfirmed is returned when a delete arrives without the
	// explicit confirmation signal.
	ErrDeleteNotConfirmed = errors.New("delete not confirmed")
)

// CatalogServiceImpl implements ports.CatalogService. Mutations are
// serialized because the repository convention is read-modify-write over
// the whole collection.
type CatalogServiceImpl struct {
	repo ports.CatalogRepository
	mu   sync.Mutex
}

// NewCatalogService creates a new CatalogServiceImpl.
func NewCatalogService(repo ports.CatalogRepository) *CatalogServiceImpl {
	return &CatalogServiceImpl{
		repo: repo,
	}
}

// List returns the current catalog.
func (s *CatalogServiceImpl) List(ctx context.Context) ([]domain.Offering, error) {
	offerings, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load offerings: %w", err)
	}
	return offerings, nil
}

// Create adds a new offering. An empty id is assigned automatically.
func (s *CatalogServiceImpl) Create(ctx context.Context, offering domain.Offering) (*domain.Offering, error) {
	if offering.Title == "" {
		return nil, domain.ErrMissingTitle
	}
	if offering.ID == "" {
		offering.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	offerings, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load offerings: %w", err)
	}

	if err := s.repo.Replace(ctx, append(offerings, offering)); err != nil {
		return nil, fmt.Errorf("service: failed to save offerings: %w", err)
	}
	return &offering, nil
}

// Update replaces an existing offering's content, keeping its id.
func (s *CatalogServiceImpl) Update(ctx context.Context, id string, offering domain.Offering) (*domain.Offering, error) {
	if offering.Title == "" {
		return nil, domain.ErrMissingTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	offerings, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load offerings: %w", err)
	}

	for i := range offerings {
		if offerings[i].ID != id {
			continue
		}
		offering.ID = id
		offerings[i] = offering
		if err := s.repo.Replace(ctx, offerings); err != nil {
			return nil, fmt.Errorf("service: failed to save offerings: %w", err)
		}
		return &offering, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrOfferingNotFound, id)
}

// Delete removes an offering permanently after explicit confirmation.
func (s *CatalogServiceImpl) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrDeleteNotConfirmed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	offerings, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("service: failed to load offerings: %w", err)
	}

	for i := range offerings {
		if offerings[i].ID != id {
			continue
		}
		offerings = append(offerings[:i], offerings[i+1:]...)
		if err := s.repo.Replace(ctx, offerings); err != nil {
			return fmt.Errorf("service: failed to save offerings: %w", err)
		}
		return nil
	}

	return fmt.Errorf("%w: %s", ErrOfferingNotFound, id)
}
