package ports

import (
	"context"

	"roadways-api/internal/features/catalog/domain"
)

// CatalogService defines the primary port for offering operations.
type CatalogService interface {
	List(ctx context.Context) ([]domain.Offering, error)
	Create(ctx context.Context, offering domain.Offering) (*domain.Offering, error)
	Update(ctx context.Context, id string, offering domain.Offering) (*domain.Offering, error)
	Delete(ctx context.Context, id string, confirmed bool) error
}

// CatalogRepository defines the secondary port for offering storage.
// The collection persists as one array, replaced wholesale.
type CatalogRepository interface {
	List(ctx context.Context) ([]domain.Offering, error)
	Replace(ctx context.Context, offerings []domain.Offering) error
}
