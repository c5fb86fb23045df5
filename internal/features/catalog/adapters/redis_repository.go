package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"roadways-api/internal/core/kvstore"
	"roadways-api/internal/features/catalog/domain"
)

// offeringsKey is the fixed store key inherited from the original site data.
const offeringsKey = "dr_services"

// RedisCatalogRepository implements ports.CatalogRepository over the
// key-value store.
type RedisCatalogRepository struct {
	store kvstore.Store
}

// NewRedisCatalogRepository creates a new RedisCatalogRepository.
func NewRedisCatalogRepository(store kvstore.Store) *RedisCatalogRepository {
	return &RedisCatalogRepository{
		store: store,
	}
}

// List loads the offerings. A store that has never been written returns the
// stock offerings; an explicitly emptied catalog stays empty.
func (r *RedisCatalogRepository) List(ctx context.Context) ([]domain.Offering, error) {
	data, err := r.store.Get(ctx, offeringsKey)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return domain.Defaults(), nil
		}
		return nil, fmt.Errorf("failed to load offerings: %w", err)
	}

	var offerings []domain.Offering
	if err := json.Unmarshal(data, &offerings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal offerings: %w", err)
	}

	return offerings, nil
}

// Replace persists the full catalog wholesale.
func (r *RedisCatalogRepository) Replace(ctx context.Context, offerings []domain.Offering) error {
	if offerings == nil {
		offerings = []domain.Offering{}
	}

	data, err := json.Marshal(offerings)
	if err != nil {
		return fmt.Errorf("failed to marshal offerings: %w", err)
	}

	if err := r.store.Set(ctx, offeringsKey, data); err != nil {
		return fmt.Errorf("failed to save offerings: %w", err)
	}

	return nil
}
