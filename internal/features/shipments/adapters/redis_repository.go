package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"roadways-api/internal/core/kvstore"
	"roadways-api/internal/features/shipments/domain"
)

// shipmentsKey is the fixed store key inherited from the original site data.
const shipmentsKey = "dr_shipments"

// RedisShipmentRepository implements ports.Repository over the key-value
// store. The whole collection is one JSON array, replaced on every write.
type RedisShipmentRepository struct {
	store kvstore.Store
}

// NewRedisShipmentRepository creates a new RedisShipmentRepository.
func NewRedisShipmentRepository(store kvstore.Store) *RedisShipmentRepository {
	return &RedisShipmentRepository{
		store: store,
	}
}

// List loads the shipment collection. An absent key is an empty collection,
// not an error.
func (r *RedisShipmentRepository) List(ctx context.Context) ([]domain.Shipment, error) {
	data, err := r.store.Get(ctx, shipmentsKey)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load shipments: %w", err)
	}

	var shipments []domain.Shipment
	if err := json.Unmarshal(data, &shipments); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shipments: %w", err)
	}

	return shipments, nil
}

// Replace persists the full collection wholesale.
func (r *RedisShipmentRepository) Replace(ctx context.Context, shipments []domain.Shipment) error {
	if shipments == nil {
		shipments = []domain.Shipment{}
	}

	data, err := json.Marshal(shipments)
	if err != nil {
		return fmt.Errorf("failed to marshal shipments: %w", err)
	}

	if err := r.store.Set(ctx, shipmentsKey, data); err != nil {
		return fmt.Errorf("failed to save shipments: %w", err)
	}

	return nil
}
