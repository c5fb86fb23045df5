package service

import (
	"context"
	"errors"
	"fmt"

	"roadways-api/internal/features/company/domain"
	"roadways-api/internal/features/company/ports"
)

// ErrMissingName is returned when an update would blank the company name.
var ErrMissingName = errors.New("company name is required")

// CompanyServiceImpl implements ports.CompanyService.
type CompanyServiceImpl struct {
	repo ports.CompanyRepository
}

// NewCompanyService creates a new CompanyServiceImpl.
func NewCompanyService(repo ports.CompanyRepository) *CompanyServiceImpl {
	return &CompanyServiceImpl{
		repo: repo,
	}
}

// GetDetails returns the current company identity.
func (s *CompanyServiceImpl) GetDetails(ctx context.Context) (*domain.CompanyDetails, error) {
	details, err := s.repo.GetDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load company details: %w", err)
	}
	return details, nil
}

// UpdateDetails replaces the company identity wholesale. The name may never
// be blanked since it anchors the whole site.
func (s *CompanyServiceImpl) UpdateDetails(ctx context.Context, details domain.CompanyDetails) error {
	if details.Name == "" {
		return ErrMissingName
	}

	if err := s.repo.SaveDetails(ctx, details); err != nil {
		return fmt.Errorf("service: failed to save company details: %w", err)
	}
	return nil
}

// GetAssets returns the current site imagery.
func (s *CompanyServiceImpl) GetAssets(ctx context.Context) (*domain.SiteAssets, error) {
	assets, err := s.repo.GetAssets(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load site assets: %w", err)
	}
	return assets, nil
}

// UpdateAssets replaces the site imagery wholesale.
func (s *CompanyServiceImpl) UpdateAssets(ctx context.Context, assets domain.SiteAssets) error {
	if err := s.repo.SaveAssets(ctx, assets); err != nil {
		return fmt.Errorf("service: failed to save site assets: %w", err)
	}
	return nil
}
