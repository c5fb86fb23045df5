package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"roadways-api/internal/core/kvstore"
	"roadways-api/internal/features/company/domain"
)

// Fixed store keys inherited from the original site data.
const (
	detailsKey = "dr_company_details"
	assetsKey  = "dr_assets"
)

// RedisCompanyRepository implements ports.CompanyRepository over the
// key-value store. Missing keys resolve to the built-in defaults so the site
// renders before any operator edit.
type RedisCompanyRepository struct {
	store kvstore.Store
}

// NewRedisCompanyRepository creates a new RedisCompanyRepository.
func NewRedisCompanyRepository(store kvstore.Store) *RedisCompanyRepository {
	return &RedisCompanyRepository{
		store: store,
	}
}

// GetDetails loads the company identity, falling back to defaults when the
// key is absent.
func (r *RedisCompanyRepository) GetDetails(ctx context.Context) (*domain.CompanyDetails, error) {
	data, err := r.store.Get(ctx, detailsKey)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			details := domain.DefaultDetails()
			return &details, nil
		}
		return nil, fmt.Errorf("failed to load company details: %w", err)
	}

	var details domain.CompanyDetails
	if err := json.Unmarshal(data, &details); err != nil {
		return nil, fmt.Errorf("failed to unmarshal company details: %w", err)
	}

	return &details, nil
}

// SaveDetails persists the company identity wholesale.
func (r *RedisCompanyRepository) SaveDetails(ctx context.Context, details domain.CompanyDetails) error {
	data, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to marshal company details: %w", err)
	}

	if err := r.store.Set(ctx, detailsKey, data); err != nil {
		return fmt.Errorf("failed to save company details: %w", err)
	}

	return nil
}

// GetAssets loads the site imagery, falling back to defaults when the key is
// absent.
func (r *RedisCompanyRepository) GetAssets(ctx context.Context) (*domain.SiteAssets, error) {
	data, err := r.store.Get(ctx, assetsKey)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			assets := domain.DefaultAssets()
			return &assets, nil
		}
		return nil, fmt.Errorf("failed to load site assets: %w", err)
	}

	var assets domain.SiteAssets
	if err := json.Unmarshal(data, &assets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal site assets: %w", err)
	}

	return &assets, nil
}

// SaveAssets persists the site imagery wholesale.
func (r *RedisCompanyRepository) SaveAssets(ctx context.Context, assets domain.SiteAssets) error {
	data, err := json.Marshal(assets)
	if err != nil {
		return fmt.Errorf("failed to marshal site assets: %w", err)
	}

	if err := r.store.Set(ctx, assetsKey, data); err != nil {
		return fmt.Errorf("failed to save site assets: %w", err)
	}

	return nil
}
