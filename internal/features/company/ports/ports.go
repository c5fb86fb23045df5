package ports

import (
	"context"

	"roadways-api/internal/features/company/domain"
)

// CompanyService defines the primary port for company profile operations.
type CompanyService interface {
	// GetDetails returns the current company identity.
	GetDetails(ctx context.Context) (*domain.CompanyDetails, error)
	// UpdateDetails replaces the company identity wholesale.
	UpdateDetails(ctx context.Context, details domain.CompanyDetails) error
	// GetAssets returns the current site imagery.
	GetAssets(ctx context.Context) (*domain.SiteAssets, error)
	// UpdateAssets replaces the site imagery wholesale.
	UpdateAssets(ctx context.Context, assets domain.SiteAssets) error
}

// CompanyRepository defines the secondary port for company profile storage.
type CompanyRepository interface {
	GetDetails(ctx context.Context) (*domain.CompanyDetails, error)
	SaveDetails(ctx context.Context, details domain.CompanyDetails) error
	GetAssets(ctx context.Context) (*domain.SiteAssets, error)
	SaveAssets(ctx context.Context, assets domain.SiteAssets) error
}
